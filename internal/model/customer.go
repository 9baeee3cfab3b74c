package model

import "time"

// Customer mirrors the wire shape of the /clientes resource. Field names on
// the wire are the backend's Portuguese ones.
type Customer struct {
	ID            int64               `json:"id,omitempty"`
	Name          string              `json:"nome"`
	CPF           string              `json:"cpf"`
	BirthDate     string              `json:"dataNascimento"`
	Address       string              `json:"endereco,omitempty"`
	Phone         string              `json:"telefone"`
	Email         string              `json:"email"`
	Login         string              `json:"loginUsuario,omitempty"`
	PasswordHash  string              `json:"senhaHash,omitempty"`
	RegisteredAt  *time.Time          `json:"dataCadastro,omitempty"`
	Holdings      []AccountMembership `json:"titularidades,omitempty"`
	Beneficiaries []Beneficiary       `json:"beneficiarios,omitempty"`
}

// AccountMembership links a customer to an account they hold.
type AccountMembership struct {
	ID      int64    `json:"id,omitempty"`
	Account *Account `json:"conta,omitempty"`
}

type Beneficiary struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"nome,omitempty"`
}

// FormattedCPF renders an 11-digit CPF as 000.000.000-00. Anything that is
// not exactly 11 digits is returned unchanged.
func (c Customer) FormattedCPF() string {
	if len(c.CPF) != 11 {
		return c.CPF
	}
	return c.CPF[0:3] + "." + c.CPF[3:6] + "." + c.CPF[6:9] + "-" + c.CPF[9:11]
}
