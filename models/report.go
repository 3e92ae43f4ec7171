package models

import "time"

// ReportOwner is a snapshot of the uploading account's display attributes,
// embedded so report listings don't need a join.
type ReportOwner struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}

// Report records an uploaded medical report: where the file landed in the
// object store, the text extracted from it and the generated summary.
type Report struct {
	ID            string      `bson:"id" json:"id"`
	Owner         ReportOwner `bson:"owner" json:"owner"`
	FileURL       string      `bson:"fileUrl" json:"fileUrl"`
	ParsedContent string      `bson:"parsedContent" json:"parsedContent"`
	Summary       string      `bson:"summary" json:"summary"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}
