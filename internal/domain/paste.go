package domain

type Paste struct {
	ID     int
	UserID int
	Data   string
}

type NewPaste struct {
	UserID int
	Data   string
}
