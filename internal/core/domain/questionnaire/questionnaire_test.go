package questionnaire

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleQuestionnaire() Questionnaire {
	return Questionnaire{
		Name:                  "A",
		Surname:               "B",
		DateOfBirth:           "2000-01-01",
		Gender:                "f",
		AboutMe:               "x",
		WorkExperience:        "y",
		VKLink:                "vk.com/a",
		TelegramLink:          "t.me/a",
		CertificatePhotos:     []Attachment{NewAttachment("file1.png", []byte("file1"))},
		PassportPhoto:         NewAttachment("file2.png", []byte("file2")),
		UserPhoto:             NewAttachment("file3.png", []byte("file3")),
		UserWithPassportPhoto: NewAttachment("file4.png", []byte("file4")),
	}
}

func TestWireKey_Table(t *testing.T) {
	expected := map[string]string{
		"name":                  "name",
		"surname":               "surname",
		"dateOfBirth":           "date_of_birth",
		"gender":                "gender",
		"aboutMe":               "about_me",
		"workExperience":        "work_experience",
		"vkLink":                "vk_link",
		"telegramLink":          "telegram_link",
		"certificatePhotos":     "certificate_photos",
		"passportPhoto":         "passport_photo",
		"userPhoto":             "user_photo",
		"userWithPassportPhoto": "user_with_passport_photo",
	}

	assert.Len(t, Fields, len(expected))
	for name, key := range expected {
		got, ok := WireKey(name)
		assert.True(t, ok, name)
		assert.Equal(t, key, got, name)
	}

	_, ok := WireKey("date_of_birth")
	assert.False(t, ok, "wire keys are not input names")
}

func TestParts_OrderAndValues(t *testing.T) {
	parts := sampleQuestionnaire().Parts()
	require.Len(t, parts, 12)

	keys := make([]string, len(parts))
	for i, p := range parts {
		keys[i] = p.Key
	}
	assert.Equal(t, []string{
		"name", "surname", "date_of_birth", "gender", "about_me", "work_experience",
		"vk_link", "telegram_link", "certificate_photos", "passport_photo",
		"user_photo", "user_with_passport_photo",
	}, keys)

	assert.Equal(t, "2000-01-01", parts[2].Value)
	assert.Equal(t, "vk.com/a", parts[6].Value)
	assert.Equal(t, FilePart, parts[9].Kind)
	assert.Equal(t, "file2.png", parts[9].File.Filename)
}

func TestParts_EachCertificateIsOwnPart(t *testing.T) {
	q := sampleQuestionnaire()
	q.CertificatePhotos = []Attachment{
		NewAttachment("c1.jpg", []byte("1")),
		NewAttachment("c2.jpg", []byte("2")),
		NewAttachment("c3.jpg", []byte("3")),
	}

	var certs []string
	for _, p := range q.Parts() {
		if p.Key == "certificate_photos" {
			certs = append(certs, p.File.Filename)
		}
	}
	assert.Equal(t, []string{"c1.jpg", "c2.jpg", "c3.jpg"}, certs)
}

func TestParts_OmitsEmptyAttachments(t *testing.T) {
	q := Questionnaire{
		Name:              "A",
		CertificatePhotos: []Attachment{NewAttachment("c.png", []byte("c")), {}},
	}

	var keys []string
	for _, p := range q.Parts() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{
		"name", "surname", "date_of_birth", "gender", "about_me", "work_experience",
		"vk_link", "telegram_link", "certificate_photos",
	}, keys)
}

func TestParts_TextValuesUnchanged_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := sampleQuestionnaire()
		q.Name = rapid.String().Draw(t, "name")
		q.AboutMe = rapid.String().Draw(t, "aboutMe")
		q.TelegramLink = rapid.String().Draw(t, "telegramLink")

		got := map[string]string{}
		for _, p := range q.Parts() {
			if p.Kind == TextPart {
				got[p.Key] = p.Value
			}
		}
		if got["name"] != q.Name || got["about_me"] != q.AboutMe || got["telegram_link"] != q.TelegramLink {
			t.Fatalf("text values changed: %#v", got)
		}
		if len(got) != 8 {
			t.Fatalf("expected 8 text parts, got %d", len(got))
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Questionnaire)
		wantErr string
	}{
		{name: "Complete_IsValid", mutate: func(q *Questionnaire) {}},
		{name: "FullURLLink_IsValid", mutate: func(q *Questionnaire) { q.VKLink = "https://vk.com/id1" }},
		{name: "EmptyLinks_AreValid", mutate: func(q *Questionnaire) { q.VKLink, q.TelegramLink = "", "" }},
		{name: "MissingName", mutate: func(q *Questionnaire) { q.Name = "" }, wantErr: "name"},
		{name: "BadDate", mutate: func(q *Questionnaire) { q.DateOfBirth = "01.01.2000" }, wantErr: "date_of_birth"},
		{name: "BadLink", mutate: func(q *Questionnaire) { q.TelegramLink = "not a link" }, wantErr: "telegram_link"},
		{name: "NoCertificates", mutate: func(q *Questionnaire) { q.CertificatePhotos = nil }, wantErr: "certificate_photos"},
		{name: "MissingPassportContent", mutate: func(q *Questionnaire) { q.PassportPhoto = Attachment{Filename: "p.png"} }, wantErr: "passport_photo.content"},
		{name: "MissingCertificateFilename", mutate: func(q *Questionnaire) {
			q.CertificatePhotos = []Attachment{{Content: io.LimitReader(nil, 0)}}
		}, wantErr: "certificate_photos[0].filename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := sampleQuestionnaire()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidator_RegistersWebLink(t *testing.T) {
	var v interface{ Var(interface{}, string) error }
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Var("t.me/a", "weblink"))
	assert.Error(t, v.Var("not a link", "weblink"))
}

func TestFileAttachment_OpensLazily(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "passport.jpg")

	a := FileAttachment(path)
	assert.Equal(t, "passport.jpg", a.Filename)

	// file does not exist yet; creating the attachment must not fail
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o600))

	data, err := io.ReadAll(a.Content)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.NoError(t, a.Content.(io.Closer).Close())
}

func TestFileAttachment_MissingFileFailsOnRead(t *testing.T) {
	a := FileAttachment(filepath.Join(t.TempDir(), "missing.png"))
	_, err := io.ReadAll(a.Content)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
