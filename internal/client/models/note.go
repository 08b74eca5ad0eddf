package models

// Note is a user-owned record with a server-assigned id and timestamps.
// Tags preserve the order the user entered them in.
type Note struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// NotePayload is the request body for note create and update. Update is a
// full replacement of all three fields.
type NotePayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
