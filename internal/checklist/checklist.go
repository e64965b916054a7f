// Package checklist derives the profile-completeness checklist shown to the
// user on the profile screen.
package checklist

import (
	"vitrine/internal/models"
	"vitrine/internal/validation"
)

// Item IDs. The mobile client keys its rendering on these values.
const (
	ItemAvatar       = "avatar"
	ItemPhone        = "phone"
	ItemLocation     = "location"
	ItemCPF          = "cpf"
	ItemCNPJ         = "cnpj"
	ItemRazaoSocial  = "razaoSocial"
	ItemNomeFantasia = "nomeFantasia"
)

// Derive computes the checklist for a user. The order is a contract with the
// UI: the three base items first, then the account-kind specific items.
func Derive(user *models.User) []models.ChecklistItem {
	items := []models.ChecklistItem{
		{ID: ItemAvatar, Title: "Adicione uma foto de perfil", IsComplete: user.Avatar != ""},
		{ID: ItemPhone, Title: "Informe seu telefone", IsComplete: user.Telefone != ""},
		{ID: ItemLocation, Title: "Informe sua localização", IsComplete: user.Cidade != "" && user.Estado != ""},
	}

	switch user.TipoPessoa {
	case models.PessoaFisica:
		items = append(items, models.ChecklistItem{
			ID:         ItemCPF,
			Title:      "Informe seu CPF",
			IsComplete: validation.ValidCPF(user.CPF),
		})
	case models.PessoaJuridica:
		items = append(items,
			models.ChecklistItem{
				ID:         ItemCNPJ,
				Title:      "Informe seu CNPJ",
				IsComplete: validation.ValidCNPJ(user.CNPJ),
			},
			models.ChecklistItem{
				ID:         ItemRazaoSocial,
				Title:      "Informe sua razão social",
				IsComplete: user.RazaoSocial != "",
			},
			models.ChecklistItem{
				ID:         ItemNomeFantasia,
				Title:      "Informe seu nome fantasia",
				IsComplete: user.NomeFantasia != "",
			},
		)
	}

	return items
}
