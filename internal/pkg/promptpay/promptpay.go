// Package promptpay builds EMVCo QR payloads for Thai PromptPay transfers.
package promptpay

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTarget   = errors.New("promptpay target is empty")
	ErrInvalidTarget = errors.New("promptpay target must be a phone number, national id or e-wallet id")
	ErrInvalidAmount = errors.New("promptpay amount must be positive")
)

const (
	idPayloadFormat   = "00"
	idPOIMethod       = "01"
	idMerchantInfo    = "29"
	idCountryCode     = "58"
	idCurrency        = "53"
	idAmount          = "54"
	idCRC             = "63"
	promptPayAID      = "A000000677010111"
	subAID            = "00"
	subPhone          = "01"
	subNationalID     = "02"
	subEWallet        = "03"
	poiDynamic        = "12"
	currencyTHB       = "764"
	countryTH         = "TH"
	payloadFormatCode = "01"
)

type Encoder struct {
	target string
}

// NewEncoder accepts a mobile number (0812345678), a 13 digit national/tax id
// or a 15 digit e-wallet id. Non-digits are ignored.
func NewEncoder(target string) (*Encoder, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, target)
	if digits == "" {
		return nil, ErrEmptyTarget
	}
	if len(digits) != 10 && len(digits) != 13 && len(digits) != 15 {
		return nil, ErrInvalidTarget
	}
	return &Encoder{target: digits}, nil
}

// Encode returns the QR payload for a one-off payment of amountCents satang.
func (e *Encoder) Encode(amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}

	var b strings.Builder
	b.WriteString(field(idPayloadFormat, payloadFormatCode))
	b.WriteString(field(idPOIMethod, poiDynamic))
	b.WriteString(field(idMerchantInfo, field(subAID, promptPayAID)+e.accountField()))
	b.WriteString(field(idCountryCode, countryTH))
	b.WriteString(field(idCurrency, currencyTHB))
	b.WriteString(field(idAmount, decimal.New(amountCents, -2).StringFixed(2)))
	b.WriteString(idCRC + "04")

	payload := b.String()
	return payload + fmt.Sprintf("%04X", Checksum([]byte(payload))), nil
}

func (e *Encoder) accountField() string {
	switch len(e.target) {
	case 13:
		return field(subNationalID, e.target)
	case 15:
		return field(subEWallet, e.target)
	default:
		phone := "66" + strings.TrimPrefix(e.target, "0")
		return field(subPhone, strings.Repeat("0", 13-len(phone))+phone)
	}
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// Checksum is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as EMVCo requires.
func Checksum(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
