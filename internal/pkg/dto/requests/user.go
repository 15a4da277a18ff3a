package requests

type DeleteUser struct {
	UserID int64
}

type ExportUser struct {
	UserID int64
}
