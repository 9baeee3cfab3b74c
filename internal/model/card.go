package model

import (
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CardType string

const (
	CardCredit CardType = "CREDITO"
	CardDebit  CardType = "DEBITO"
)

type CardStatus string

const (
	CardActive   CardStatus = "ATIVO"
	CardBlocked  CardStatus = "BLOQUEADO"
	CardInactive CardStatus = "INATIVO"
)

// Card mirrors the wire shape of the /cartoes resource. Credit cards carry a
// limit and closing/due days; those fields stay nil for debit cards.
type Card struct {
	ID          int64            `json:"id,omitempty"`
	Number      string           `json:"numeroCartao"`
	HolderName  string           `json:"nomeTitular"`
	Type        CardType         `json:"tipoCartao,omitempty"`
	IssuedAt    *time.Time       `json:"dataEmissao,omitempty"`
	ExpiresAt   time.Time        `json:"dataValidade"`
	CVVHash     string           `json:"cvvHash,omitempty"`
	Status      CardStatus       `json:"statusCartao"`
	CreditLimit *decimal.Decimal `json:"limiteCredito,omitempty"`
	ClosingDay  *int             `json:"diaFechamento,omitempty"`
	DueDay      *int             `json:"diaVencimento,omitempty"`
	Account     *Account         `json:"conta,omitempty"`
}

// MaskedNumber hides all but the last four digits of the card number.
func (c Card) MaskedNumber() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return "**** **** **** " + c.Number[len(c.Number)-4:]
}

// GenerateCardNumber produces a 16-digit card number. Credit cards get the
// Visa prefix, debit cards the Mastercard one, matching the backend's seed
// data conventions.
func GenerateCardNumber(t CardType) string {
	var b strings.Builder
	if t == CardCredit {
		b.WriteByte('4')
	} else {
		b.WriteByte('5')
	}
	for i := 0; i < 15; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// GenerateCVV produces a 3-digit CVV.
func GenerateCVV() string {
	n := rand.Intn(900) + 100
	return string([]byte{
		byte('0' + n/100),
		byte('0' + (n/10)%10),
		byte('0' + n%10),
	})
}
