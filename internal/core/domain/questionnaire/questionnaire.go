package questionnaire

// Questionnaire is a single submission request. Text values are sent exactly
// as given; attachments are sent as file parts.
type Questionnaire struct {
	Name           string `form:"name" validate:"required"`
	Surname        string `form:"surname" validate:"required"`
	DateOfBirth    string `form:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender         string `form:"gender" validate:"required"`
	AboutMe        string `form:"about_me"`
	WorkExperience string `form:"work_experience"`
	VKLink         string `form:"vk_link" validate:"omitempty,weblink"`
	TelegramLink   string `form:"telegram_link" validate:"omitempty,weblink"`

	CertificatePhotos     []Attachment `form:"certificate_photos" validate:"required,min=1,dive"`
	PassportPhoto         Attachment   `form:"passport_photo"`
	UserPhoto             Attachment   `form:"user_photo"`
	UserWithPassportPhoto Attachment   `form:"user_with_passport_photo"`
}

// PartKind distinguishes plain form values from file parts.
type PartKind int

const (
	TextPart PartKind = iota
	FilePart
)

// Field maps a caller-facing field name to its wire key.
type Field struct {
	Name    string
	WireKey string
	Kind    PartKind
}

// Fields is the fixed wire mapping, in the order parts are written.
var Fields = []Field{
	{Name: "name", WireKey: "name", Kind: TextPart},
	{Name: "surname", WireKey: "surname", Kind: TextPart},
	{Name: "dateOfBirth", WireKey: "date_of_birth", Kind: TextPart},
	{Name: "gender", WireKey: "gender", Kind: TextPart},
	{Name: "aboutMe", WireKey: "about_me", Kind: TextPart},
	{Name: "workExperience", WireKey: "work_experience", Kind: TextPart},
	{Name: "vkLink", WireKey: "vk_link", Kind: TextPart},
	{Name: "telegramLink", WireKey: "telegram_link", Kind: TextPart},
	{Name: "certificatePhotos", WireKey: "certificate_photos", Kind: FilePart},
	{Name: "passportPhoto", WireKey: "passport_photo", Kind: FilePart},
	{Name: "userPhoto", WireKey: "user_photo", Kind: FilePart},
	{Name: "userWithPassportPhoto", WireKey: "user_with_passport_photo", Kind: FilePart},
}

// WireKey returns the wire key for a caller-facing field name.
func WireKey(name string) (string, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f.WireKey, true
		}
	}
	return "", false
}

// Part is one multipart entry. Exactly one of Value or File is meaningful,
// depending on Kind.
type Part struct {
	Key   string
	Kind  PartKind
	Value string
	File  Attachment
}

// Parts flattens q into wire parts following Fields order. Every certificate
// photo becomes its own certificate_photos part. Text fields are always
// present; attachments without content are left out.
func (q Questionnaire) Parts() []Part {
	text := map[string]string{
		"name":           q.Name,
		"surname":        q.Surname,
		"dateOfBirth":    q.DateOfBirth,
		"gender":         q.Gender,
		"aboutMe":        q.AboutMe,
		"workExperience": q.WorkExperience,
		"vkLink":         q.VKLink,
		"telegramLink":   q.TelegramLink,
	}
	files := map[string][]Attachment{
		"certificatePhotos":     q.CertificatePhotos,
		"passportPhoto":         {q.PassportPhoto},
		"userPhoto":             {q.UserPhoto},
		"userWithPassportPhoto": {q.UserWithPassportPhoto},
	}

	parts := make([]Part, 0, len(Fields)+len(q.CertificatePhotos))
	for _, f := range Fields {
		switch f.Kind {
		case TextPart:
			parts = append(parts, Part{Key: f.WireKey, Kind: TextPart, Value: text[f.Name]})
		case FilePart:
			for _, a := range files[f.Name] {
				if a.Empty() {
					continue
				}
				parts = append(parts, Part{Key: f.WireKey, Kind: FilePart, File: a})
			}
		}
	}
	return parts
}
