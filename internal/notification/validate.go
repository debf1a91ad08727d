package notification

import (
	"sunsetguide/internal/validation"
	dErrors "sunsetguide/pkg/domain-errors"
)

// ErrInvalidType is the public message for an unknown discriminator.
const ErrInvalidType = "Invalid notification type"

// Validate applies the server profile to req and returns it trimmed. The
// error carries CodeValidation and the message of the first failing field.
// Name and email are checked before the type discriminator.
func Validate(req Request) (Request, error) {
	switch req.Type {
	case TypeContact:
		c, errs := validation.Server.ValidateContact(req.contact())
		if errs != nil {
			return Request{}, firstError(validation.Server.Contact, errs)
		}
		return ContactRequest(c), nil

	case TypeGroupSuggestion:
		g, errs := validation.Server.ValidateGroupSuggestion(req.groupSuggestion())
		if errs != nil {
			return Request{}, firstError(validation.Server.GroupSuggestion, errs)
		}
		return GroupSuggestionRequest(g), nil

	default:
		_, errs := validation.ServerCommon.Validate(map[string]string{
			validation.FieldName:  req.Name,
			validation.FieldEmail: req.Email,
		})
		if errs != nil {
			return Request{}, firstError(validation.ServerCommon, errs)
		}
		return Request{}, dErrors.New(dErrors.CodeBadRequest, ErrInvalidType)
	}
}

func firstError(schema validation.Schema, errs validation.FieldErrors) error {
	_, msg, _ := schema.First(errs)
	return dErrors.Wrap(errs, dErrors.CodeValidation, msg)
}
