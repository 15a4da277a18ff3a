package requests

type CreateJournal struct {
	UserID int64  `json:"-"`
	Title  string `json:"title" validate:"required,min=1,max=30"`
	Year   int    `json:"year" validate:"required,gte=1900,not_future"`
	Color  string `json:"color" validate:"omitempty,hexcolor_six"`
}

type UpdateJournal struct {
	UserID    int64  `json:"-"`
	JournalID int64  `json:"-"`
	Title     string `json:"title" validate:"required,min=1,max=30"`
	Year      int    `json:"year" validate:"required,gte=1900,not_future"`
	Color     string `json:"color" validate:"omitempty,hexcolor_six"`
}

type FindJournalByID struct {
	UserID    int64
	JournalID int64
}

type DeleteJournalByID struct {
	UserID    int64
	JournalID int64
}

type FindJournalEntries struct {
	UserID    int64
	JournalID int64
}
