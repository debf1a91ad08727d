package validation

// Contact is the contact form payload.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// GroupSuggestion is the "suggest a group" form payload.
type GroupSuggestion struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	GroupName string `json:"group_name"`
	GroupLink string `json:"group_link,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ValidateContact returns the trimmed contact form or its field errors.
func (p Profile) ValidateContact(in Contact) (Contact, FieldErrors) {
	out, errs := p.Contact.Validate(map[string]string{
		FieldName:    in.Name,
		FieldEmail:   in.Email,
		FieldMessage: in.Message,
	})
	if errs != nil {
		return Contact{}, errs
	}
	return Contact{
		Name:    out[FieldName],
		Email:   out[FieldEmail],
		Message: out[FieldMessage],
	}, nil
}

// ValidateGroupSuggestion returns the trimmed suggestion or its field errors.
func (p Profile) ValidateGroupSuggestion(in GroupSuggestion) (GroupSuggestion, FieldErrors) {
	out, errs := p.GroupSuggestion.Validate(map[string]string{
		FieldName:      in.Name,
		FieldEmail:     in.Email,
		FieldGroupName: in.GroupName,
		FieldGroupLink: in.GroupLink,
		FieldNote:      in.Note,
	})
	if errs != nil {
		return GroupSuggestion{}, errs
	}
	return GroupSuggestion{
		Name:      out[FieldName],
		Email:     out[FieldEmail],
		GroupName: out[FieldGroupName],
		GroupLink: out[FieldGroupLink],
		Note:      out[FieldNote],
	}, nil
}
