package models

import "gorm.io/gorm"

// TipoPessoa identifies the account kind, fixed at registration.
type TipoPessoa string

const (
	// PessoaFisica is an individual account.
	PessoaFisica TipoPessoa = "PF"
	// PessoaJuridica is an organization (legal-entity) account.
	PessoaJuridica TipoPessoa = "PJ"
)

// User represents an account on the marketplace. PF accounts carry a CPF;
// PJ accounts carry CNPJ, razão social and nome fantasia instead.
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Nome       string     `json:"nome" gorm:"type:varchar(50)" validate:"required,min=3,max=50"`
	Email      string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	TipoPessoa TipoPessoa `json:"tipoPessoa" gorm:"type:varchar(2)" validate:"required,oneof=PF PJ"`

	// Optional contact and location fields, filled in after registration.
	Telefone string `json:"telefone,omitempty" gorm:"type:varchar(20)"`
	Cidade   string `json:"cidade,omitempty" gorm:"type:varchar(50)"`
	Estado   string `json:"estado,omitempty" gorm:"type:varchar(2)"`

	// Avatar and AvatarPublicID are set together or not at all.
	Avatar         string `json:"avatar,omitempty" gorm:"type:varchar(500)"`
	AvatarPublicID string `json:"avatarPublicId,omitempty" gorm:"type:varchar(255)"`
	AvatarBlurhash string `json:"avatarBlurhash,omitempty" gorm:"type:varchar(100)"`

	// Document fields by account kind.
	CPF          string `json:"cpf,omitempty" gorm:"type:varchar(11)"`
	CNPJ         string `json:"cnpj,omitempty" gorm:"type:varchar(18)"`
	RazaoSocial  string `json:"razaoSocial,omitempty" gorm:"type:varchar(100)"`
	NomeFantasia string `json:"nomeFantasia,omitempty" gorm:"type:varchar(100)"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasAvatar reports whether the user currently has a hosted avatar.
func (u *User) HasAvatar() bool {
	return u.Avatar != "" && u.AvatarPublicID != ""
}

// ChecklistItem is one entry of the derived profile-completeness checklist.
// It is computed on every read and never persisted.
type ChecklistItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	IsComplete bool   `json:"isComplete"`
}
