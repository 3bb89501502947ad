package domain

import "time"

// Document represents one retrieved Federal Reserve release stored in the database
type Document struct {
	Series      string    `bson:"series"`
	URL         string    `bson:"url"`
	Date        time.Time `bson:"date"`
	DateLabel   string    `bson:"date_label"`
	Text        string    `bson:"text"`
	RetrievedAt time.Time `bson:"retrieved_at"`
}
