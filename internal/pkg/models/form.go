package models

// FormField is the subset of a form field definition the verification
// engine reads. ID is the hex form of the stored ObjectID.
type FormField struct {
	ID           string    `json:"_id"`
	FieldType    FieldType `json:"fieldType"`
	Title        string    `json:"title"`
	IsVerifiable bool      `json:"isVerifiable"`
}

// Form is the subset of a form definition the verification engine reads.
// ID and AdminID are hex ObjectIDs.
type Form struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	AdminID     string      `json:"admin"`
	MsgSrvcName string      `json:"msgSrvcName,omitempty"`
	FormFields  []FormField `json:"form_fields"`
}

// UsesDefaultSmsCredentials reports whether SMS for this form is sent with
// the shared credentials, which are subject to the per-admin quota.
func (f *Form) UsesDefaultSmsCredentials() bool {
	return f.MsgSrvcName == ""
}
