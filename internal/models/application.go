package models

// JobApplication is a submitted job application with its resume attachment.
// Records are append-only; they are never mutated after submission and only
// disappear on a full storage reset.
type JobApplication struct {
	ApplicationID  string `json:"application_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	CoverLetter    string `json:"cover_letter,omitempty"`
	ResumeFilename string `json:"resume_filename"`
	ResumePath     string `json:"resume_path"`
	ResumeSize     int    `json:"resume_size"`
	ResumePages    int    `json:"resume_pages,omitempty"`
	SubmittedAt    string `json:"submitted_at"`
}
