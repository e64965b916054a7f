package checklist_test

import (
	"testing"

	"vitrine/internal/checklist"
	"vitrine/internal/models"

	"github.com/stretchr/testify/assert"
)

func itemIDs(items []models.ChecklistItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestDerive_PFEmptyProfile(t *testing.T) {
	user := &models.User{TipoPessoa: models.PessoaFisica, CPF: "123"}

	items := checklist.Derive(user)

	assert.Equal(t, []string{"avatar", "phone", "location", "cpf"}, itemIDs(items))
	for _, item := range items {
		assert.False(t, item.IsComplete, "item %s should be incomplete", item.ID)
	}
}

func TestDerive_PFCompleteProfile(t *testing.T) {
	user := &models.User{
		TipoPessoa: models.PessoaFisica,
		Avatar:     "https://media.example.com/abc.jpg",
		Telefone:   "(11) 99999-9999",
		Cidade:     "São Paulo",
		Estado:     "SP",
		CPF:        "11144477735",
	}

	for _, item := range checklist.Derive(user) {
		assert.True(t, item.IsComplete, "item %s should be complete", item.ID)
	}
}

func TestDerive_PFInvalidCPFIncomplete(t *testing.T) {
	user := &models.User{TipoPessoa: models.PessoaFisica, CPF: "11111111111"}

	items := checklist.Derive(user)
	assert.Equal(t, "cpf", items[3].ID)
	assert.False(t, items[3].IsComplete)
}

func TestDerive_PJOrder(t *testing.T) {
	user := &models.User{TipoPessoa: models.PessoaJuridica}

	items := checklist.Derive(user)

	assert.Equal(t, []string{"avatar", "phone", "location", "cnpj", "razaoSocial", "nomeFantasia"}, itemIDs(items))
}

func TestDerive_PJCompleteness(t *testing.T) {
	user := &models.User{
		TipoPessoa:   models.PessoaJuridica,
		CNPJ:         "12345678000190",
		RazaoSocial:  "Empresa Exemplo LTDA",
		NomeFantasia: "Exemplo",
	}

	items := checklist.Derive(user)
	byID := make(map[string]bool)
	for _, item := range items {
		byID[item.ID] = item.IsComplete
	}

	assert.True(t, byID["cnpj"])
	assert.True(t, byID["razaoSocial"])
	assert.True(t, byID["nomeFantasia"])
	assert.False(t, byID["avatar"])
	assert.False(t, byID["phone"])
	assert.False(t, byID["location"])
}

func TestDerive_LocationNeedsBothFields(t *testing.T) {
	user := &models.User{TipoPessoa: models.PessoaFisica, Cidade: "Recife"}

	items := checklist.Derive(user)
	assert.Equal(t, "location", items[2].ID)
	assert.False(t, items[2].IsComplete)
}
