package services

import (
	"context"
	"strings"

	"go-food-ordering/apperrors"
	"go-food-ordering/repository"
)

const (
	ProfileUpdated = "Profile Updated Successfully!"
	AddressUpdated = "Address Updated!"
	NoAddress      = "No address found."
)

type ProfileView struct {
	DisplayName string `json:"displayName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ProfileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// Load reads the stored profile. Email always comes from the live session,
// not the document.
func (s *ProfileService) Load(ctx context.Context, uid, sessionEmail string) (*ProfileView, error) {
	if uid == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	address := user.Address
	if address == "" {
		address = NoAddress
	}
	return &ProfileView{
		DisplayName: user.DisplayName(),
		Name:        user.Name,
		Email:       sessionEmail,
		Phone:       user.Phone,
		Address:     address,
	}, nil
}

// Save writes name and phone and returns the new display name without
// reading the document back.
func (s *ProfileService) Save(ctx context.Context, uid string, in ProfileInput) (string, error) {
	if uid == "" {
		return "", apperrors.ErrNotAuthenticated
	}
	name := strings.TrimSpace(in.Name)
	if err := s.users.UpdateProfile(ctx, uid, name, strings.TrimSpace(in.Phone)); err != nil {
		return "", err
	}
	return name, nil
}

func (s *ProfileService) UpdateAddress(ctx context.Context, uid, address string) (string, error) {
	if uid == "" {
		return "", apperrors.ErrNotAuthenticated
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return "", apperrors.Validation("Address is required.")
	}
	if err := s.users.UpdateAddress(ctx, uid, address); err != nil {
		return "", err
	}
	return address, nil
}
