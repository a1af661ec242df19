package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"qform.io/cli/internal/core/domain/questionnaire"
	configinfra "qform.io/cli/internal/infrastructure/config"
)

// SubmitFlags holds the raw flag values of the submit command.
type SubmitFlags struct {
	Name                  string
	Surname               string
	DateOfBirth           string
	Gender                string
	AboutMe               string
	WorkExperience        string
	VKLink                string
	TelegramLink          string
	CertificatePhotos     []string
	PassportPhoto         string
	UserPhoto             string
	UserWithPassportPhoto string

	DryRun         bool
	SkipValidation bool
}

// Questionnaire builds the submission from flags. Photo flags are file paths.
func (f *SubmitFlags) Questionnaire() questionnaire.Questionnaire {
	q := questionnaire.Questionnaire{
		Name:           f.Name,
		Surname:        f.Surname,
		DateOfBirth:    f.DateOfBirth,
		Gender:         f.Gender,
		AboutMe:        f.AboutMe,
		WorkExperience: f.WorkExperience,
		VKLink:         f.VKLink,
		TelegramLink:   f.TelegramLink,
	}
	for _, p := range f.CertificatePhotos {
		q.CertificatePhotos = append(q.CertificatePhotos, questionnaire.FileAttachment(p))
	}
	if f.PassportPhoto != "" {
		q.PassportPhoto = questionnaire.FileAttachment(f.PassportPhoto)
	}
	if f.UserPhoto != "" {
		q.UserPhoto = questionnaire.FileAttachment(f.UserPhoto)
	}
	if f.UserWithPassportPhoto != "" {
		q.UserWithPassportPhoto = questionnaire.FileAttachment(f.UserWithPassportPhoto)
	}
	return q
}

// NewSubmitCommand creates the submit command
func NewSubmitCommand(container *CLIContainer) *cobra.Command {
	flags := &SubmitFlags{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a questionnaire",
		Long: `Submit a questionnaire to the configured endpoint as multipart/form-data.

Photo flags take file paths; --certificate-photo may be repeated.`,
		Example: `  qf submit --name Anna --surname Ivanova --date-of-birth 2000-01-01 --gender f \
    --vk-link vk.com/anna --telegram-link t.me/anna \
    --certificate-photo diploma.jpg --passport-photo passport.jpg \
    --user-photo me.jpg --user-with-passport-photo me_passport.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, container, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Name, "name", "", "First name")
	f.StringVar(&flags.Surname, "surname", "", "Last name")
	f.StringVar(&flags.DateOfBirth, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	f.StringVar(&flags.Gender, "gender", "", "Gender")
	f.StringVar(&flags.AboutMe, "about-me", "", "Free-form introduction")
	f.StringVar(&flags.WorkExperience, "work-experience", "", "Work experience")
	f.StringVar(&flags.VKLink, "vk-link", "", "VK profile link")
	f.StringVar(&flags.TelegramLink, "telegram-link", "", "Telegram link")
	f.StringArrayVar(&flags.CertificatePhotos, "certificate-photo", nil, "Certificate photo file (repeatable)")
	f.StringVar(&flags.PassportPhoto, "passport-photo", "", "Passport photo file")
	f.StringVar(&flags.UserPhoto, "user-photo", "", "User photo file")
	f.StringVar(&flags.UserWithPassportPhoto, "user-with-passport-photo", "", "Photo of the user holding the passport")
	f.BoolVar(&flags.DryRun, "dry-run", false, "Print the form parts instead of sending them")
	f.BoolVar(&flags.SkipValidation, "skip-validation", false, "Send even if local checks fail")

	return cmd
}

func runSubmit(cmd *cobra.Command, container *CLIContainer, flags *SubmitFlags) error {
	rt := container.Runtime()
	out := cmd.OutOrStdout()
	q := flags.Questionnaire()

	if !flags.SkipValidation {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	if flags.DryRun {
		fmt.Fprintln(out, renderParts(q.Parts()))
		return nil
	}

	if err := configinfra.Validate(rt.Config); err != nil {
		return err
	}

	rt.Logger.Info("submitting questionnaire", "url", rt.Config.QuestionnaireURL)
	resp, err := rt.Client.Submit(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	fmt.Fprintln(out, renderResponse(resp.Status, resp.StatusCode, body))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend rejected the questionnaire: %s", resp.Status)
	}
	return nil
}
