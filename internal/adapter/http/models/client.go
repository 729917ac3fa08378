package models

import (
	"errors"
	"strings"
)

type CreateClientRequest struct {
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	Age            int    `json:"age,omitempty"`
	Identification string `json:"identification"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Password       string `json:"password"`
	Active         *bool  `json:"active,omitempty"`
}

func (r CreateClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Identification) == "" {
		errs = append(errs, "identification is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}
	if r.Age < 0 {
		errs = append(errs, "age cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type UpdateClientRequest struct {
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	Age            int    `json:"age,omitempty"`
	Identification string `json:"identification"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	// Password is optional on update; empty keeps the stored hash.
	Password string `json:"password,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

func (r UpdateClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Identification) == "" {
		errs = append(errs, "identification is required")
	}
	if r.Age < 0 {
		errs = append(errs, "age cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ClientResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	Age            int    `json:"age,omitempty"`
	Identification string `json:"identification"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Active         bool   `json:"active"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
