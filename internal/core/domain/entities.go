package domain

// Typed inputs per collection. Nil pointers are left out of the patch so an
// update only touches the fields that were set.

// UserPatch creates or updates a marketplace user.
type UserPatch struct {
	ID          *string  `json:"id,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Role        *string  `json:"role,omitempty"` // "photographer" or "client"
	Bio         *string  `json:"bio,omitempty"`
	Location    *string  `json:"location,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

func (p UserPatch) Fields() Fields {
	f := Fields{}
	setString(f, "id", p.ID)
	setString(f, "email", p.Email)
	setString(f, "name", p.Name)
	setString(f, "role", p.Role)
	setString(f, "bio", p.Bio)
	setString(f, "location", p.Location)
	setString(f, "avatar_url", p.AvatarURL)
	if p.Specialties != nil {
		f["specialties"] = toAnySlice(p.Specialties)
	}
	return f
}

// PortfolioItemInput is one photo in a photographer's portfolio.
type PortfolioItemInput struct {
	PhotographerID string  `json:"photographer_id"`
	ImageURL       string  `json:"image_url"`
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (p PortfolioItemInput) Fields() Fields {
	f := Fields{
		"photographer_id": p.PhotographerID,
		"image_url":       p.ImageURL,
	}
	setString(f, "title", p.Title)
	setString(f, "description", p.Description)
	return f
}

// ConversationInput opens a conversation between participants.
type ConversationInput struct {
	Participants []string `json:"participants"`
	Subject      *string  `json:"subject,omitempty"`
	LastMessage  *string  `json:"lastMessage,omitempty"`
}

func (c ConversationInput) Fields() Fields {
	f := Fields{"participants": toAnySlice(c.Participants)}
	setString(f, "subject", c.Subject)
	setString(f, "lastMessage", c.LastMessage)
	return f
}

// MessageInput posts a message to a conversation.
type MessageInput struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Text           string `json:"text"`
}

func (m MessageInput) Fields() Fields {
	return Fields{
		"conversationId": m.ConversationID,
		"senderId":       m.SenderID,
		"text":           m.Text,
	}
}

func setString(f Fields, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}

// JSON arrays decode as []any; keep stored shapes identical either way.
func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
