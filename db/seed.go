package db

import (
	"log"

	"superpf3/models"

	"github.com/jinzhu/gorm"
)

func strPtr(s string) *string { return &s }

// Seed insere as ferramentas iniciais quando o catálogo está vazio.
func Seed(db *gorm.DB) error {
	var count int
	if err := db.Model(&models.Tool{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	initial := []models.Tool{
		{
			Title:       "Calculadora PRICE",
			Category:    "Agro",
			Description: "Amortizações crescente/decrescente/linear com antecipação parcial.",
			ImageURL:    "https://picsum.photos/seed/price/800/450",
			LinkURL:     "https://exemplo.bb/price",
			Badge:       strPtr(models.BADGE_NOVO),
		},
		{
			Title:       "Dashboard Inadimplência",
			Category:    "Agro",
			Description: "KPIs de atraso por prefixo, agência e produto.",
			ImageURL:    "https://picsum.photos/seed/inad/800/450",
			LinkURL:     "https://exemplo.bb/inadimplencia",
			Badge:       strPtr(models.BADGE_ATUALIZADO),
		},
		{
			Title:       "Catálogo Super PF3",
			Category:    "Agro",
			Description: "Página com todas as ferramentas do Núcleo.",
			ImageURL:    "https://picsum.photos/seed/catalogo/800/450",
			LinkURL:     "https://exemplo.bb/catalogo",
		},
	}

	for i := range initial {
		if err := db.Create(&initial[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Dados iniciais inseridos (%d ferramentas)", len(initial))
	return nil
}
