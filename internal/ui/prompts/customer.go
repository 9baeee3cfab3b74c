package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"bankdesk/internal/model"
	"bankdesk/internal/validation"
)

// PromptCustomer collects a customer record step by step. A non-nil existing
// record switches to edit semantics: fields are prefilled, the login is
// fixed, and an empty password keeps the current one. The returned
// PasswordHash still carries the raw password; hashing happens on the save
// path.
func PromptCustomer(existing *model.Customer) (model.Customer, error) {
	editing := existing != nil

	customer := model.Customer{}
	if editing {
		customer = *existing
	}

	name, err := PromptInput("Full name:", customer.Name, validation.Required("name"))
	if err != nil {
		return model.Customer{}, err
	}
	customer.Name = name

	cpf, err := PromptInput("CPF:", customer.CPF, validation.ValidateCPF)
	if err != nil {
		return model.Customer{}, err
	}
	customer.CPF = validation.OnlyDigits(cpf)

	birth, err := PromptDate("Birth date (YYYY-MM-DD):", customer.BirthDate, validation.ValidateDate)
	if err != nil {
		return model.Customer{}, err
	}
	customer.BirthDate = birth

	phone, err := PromptInput("Phone:", customer.Phone, validation.ValidatePhone)
	if err != nil {
		return model.Customer{}, err
	}
	customer.Phone = validation.OnlyDigits(phone)

	email, err := PromptInput("Email:", customer.Email, validation.ValidateEmail)
	if err != nil {
		return model.Customer{}, err
	}
	customer.Email = email

	address, err := PromptInput("Address (street, number, district, city - state):", customer.Address, nil)
	if err != nil {
		return model.Customer{}, err
	}
	customer.Address = address

	if !editing {
		login, err := PromptInput("Login:", "", validation.Required("login"))
		if err != nil {
			return model.Customer{}, err
		}
		customer.Login = login

		password, err := PromptPassword("Password:", validation.Required("password"))
		if err != nil {
			return model.Customer{}, err
		}
		customer.PasswordHash = password
	} else {
		password, err := PromptPassword("New password (leave empty to keep current):", nil)
		if err != nil {
			return model.Customer{}, err
		}
		customer.PasswordHash = password
	}

	return customer, nil
}

// PromptSelectCustomer picks one customer from a previously fetched list.
func PromptSelectCustomer(message string, customers []model.Customer) (*model.Customer, error) {
	if len(customers) == 0 {
		return nil, fmt.Errorf("no customers available")
	}

	var opts []huh.Option[int]
	for i, c := range customers {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (CPF %s)", c.Name, c.FormattedCPF()), i))
	}

	var selected int
	err := huh.NewSelect[int]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return nil, err
	}

	return &customers[selected], nil
}
