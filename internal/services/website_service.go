package services

import (
	"adminboard/internal/auth"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
	"adminboard/internal/repositories"
	"adminboard/internal/utils"
)

// WebsiteService covers the website-content screens.
type WebsiteService struct {
	Lists   ListService
	Website repositories.WebsiteRepository
	Uploads UploadService
}

// AchievementInput carries the form fields; Image, when set, is a base64 data
// URL from the file picker.
type AchievementInput struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type TeamMemberInput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Image       string `json:"image"`
}

func (s WebsiteService) ListAchievements(identity auth.Identity, p listing.Params) (listing.Page[models.Achievement], error) {
	return ListRecords(s.Lists, identity, p, s.Website.ListAchievements)
}

func (s WebsiteService) ListTeamMembers(identity auth.Identity, p listing.Params) (listing.Page[models.TeamMember], error) {
	return ListRecords(s.Lists, identity, p, s.Website.ListTeamMembers)
}

func (s WebsiteService) SaveAchievement(identity auth.Identity, in AchievementInput) (int64, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return 0, err
	}

	a := models.Achievement{
		ID:          in.ID,
		Title:       utils.NormalizeSpace(in.Title),
		Description: utils.TrimOrEmpty(in.Description),
	}

	fields := ValidationError{}
	if a.Title == "" {
		fields["title"] = "title is required"
	}
	if a.Description == "" {
		fields["description"] = "description is required"
	}
	if len(fields) > 0 {
		return 0, fields
	}

	if in.Image != "" {
		stored, err := s.Uploads.SaveDataURL(in.Image)
		if err != nil {
			return 0, err
		}
		a.Image = stored
	}

	if a.ID > 0 {
		ok, err := s.Website.UpdateAchievement(a, identity.UserID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrRecordNotFound
		}
		return a.ID, nil
	}
	return s.Website.CreateAchievement(a, identity.UserID)
}

func (s WebsiteService) SaveTeamMember(identity auth.Identity, in TeamMemberInput) (int64, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return 0, err
	}

	m := models.TeamMember{
		ID:          in.ID,
		Name:        utils.NormalizeSpace(in.Name),
		Designation: utils.NormalizeSpace(in.Designation),
	}

	fields := ValidationError{}
	if m.Name == "" {
		fields["name"] = "name is required"
	}
	if m.Designation == "" {
		fields["designation"] = "designation is required"
	}
	if len(fields) > 0 {
		return 0, fields
	}

	if in.Image != "" {
		stored, err := s.Uploads.SaveDataURL(in.Image)
		if err != nil {
			return 0, err
		}
		m.Image = stored
	}

	if m.ID > 0 {
		ok, err := s.Website.UpdateTeamMember(m, identity.UserID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrRecordNotFound
		}
		return m.ID, nil
	}
	return s.Website.CreateTeamMember(m, identity.UserID)
}

func (s WebsiteService) DeleteAchievement(identity auth.Identity, id int64) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	return s.Website.SoftDeleteAchievement(id, identity.UserID)
}

func (s WebsiteService) DeleteTeamMember(identity auth.Identity, id int64) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	return s.Website.SoftDeleteTeamMember(id, identity.UserID)
}

func (s WebsiteService) ListSections(identity auth.Identity) ([]models.Section, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return nil, err
	}
	return s.Website.ListSections()
}

func (s WebsiteService) SetSectionVisibility(identity auth.Identity, id int64, visible models.YesNo) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	if id <= 0 {
		return ValidationError{"id": "id is required"}
	}
	if visible != models.Yes && visible != models.No {
		return ValidationError{"visible": "visible must be Y or N"}
	}
	ok, err := s.Website.SetSectionVisibility(id, visible, identity.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecordNotFound
	}
	return nil
}
