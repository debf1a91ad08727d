package validation

// Profile is a named pair of form schemas.
type Profile struct {
	Name            string
	Contact         Schema
	GroupSuggestion Schema
}

// Client is the profile the interactive form enforces before submitting.
var Client = Profile{
	Name: "client",
	Contact: Schema{
		clientName,
		clientEmail,
		{
			Field:           FieldMessage,
			Required:        true,
			MaxLen:          ClientMessageMaxLen,
			RequiredMessage: "Message is required",
			TooLongMessage:  "Message must be less than 2000 characters",
		},
	},
	GroupSuggestion: Schema{
		clientName,
		clientEmail,
		groupName,
		{
			Field:              FieldGroupLink,
			MaxLen:             GroupLinkMaxLen,
			Format:             FormatURL,
			FormatBeforeLength: true,
			TooLongMessage:     "Link must be less than 500 characters",
			FormatMessage:      "Must be a valid URL",
		},
		{
			Field:          FieldNote,
			MaxLen:         ClientNoteMaxLen,
			TooLongMessage: "Note must be less than 1000 characters",
		},
	},
}

// Server is the enforced profile applied at every server boundary.
var Server = Profile{
	Name:    "server",
	Contact: Schema{serverName, serverEmail, serverMessage},
	GroupSuggestion: Schema{
		serverName,
		serverEmail,
		groupName,
		{
			Field:          FieldGroupLink,
			MaxLen:         GroupLinkMaxLen,
			Format:         FormatURL,
			TooLongMessage: "Group link must be less than 500 characters",
			FormatMessage:  "Group link must be a valid URL",
		},
		{
			Field:          FieldNote,
			MaxLen:         ServerNoteMaxLen,
			TooLongMessage: "Note must be less than 2000 characters",
		},
	},
}

// ServerCommon holds the server rules shared by every notification type, in
// the order they are checked.
var ServerCommon = Schema{serverName, serverEmail}

var (
	clientName = Rule{
		Field:           FieldName,
		Required:        true,
		MaxLen:          NameMaxLen,
		RequiredMessage: "Name is required",
		TooLongMessage:  "Name must be less than 100 characters",
	}
	clientEmail = Rule{
		Field:              FieldEmail,
		Required:           true,
		MaxLen:             EmailMaxLen,
		Format:             FormatEmail,
		FormatBeforeLength: true,
		RequiredMessage:    "Invalid email address",
		TooLongMessage:     "Email must be less than 255 characters",
		FormatMessage:      "Invalid email address",
	}

	serverName  = clientName
	serverEmail = Rule{
		Field:           FieldEmail,
		Required:        true,
		MaxLen:          EmailMaxLen,
		Format:          FormatEmail,
		RequiredMessage: "Valid email is required",
		TooLongMessage:  "Valid email is required",
		FormatMessage:   "Valid email is required",
	}
	serverMessage = Rule{
		Field:           FieldMessage,
		Required:        true,
		MaxLen:          ServerMessageMaxLen,
		RequiredMessage: "Message is required",
		TooLongMessage:  "Message must be less than 5000 characters",
	}

	groupName = Rule{
		Field:           FieldGroupName,
		Required:        true,
		MaxLen:          GroupNameMaxLen,
		RequiredMessage: "Group name is required",
		TooLongMessage:  "Group name must be less than 200 characters",
	}
)
