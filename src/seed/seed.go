package seed

import (
	"log"

	"github.com/adset/vehicles-backend/src/models"
	"gorm.io/gorm"
)

// Optional-equipment catalog shipped with the system.
var optionalCatalog = []string{
	"Ar Condicionado",
	"Alarme",
	"Airbag",
	"Freio ABS",
}

func Seed(db *gorm.DB) {
	created := 0
	for _, name := range optionalCatalog {
		var existing models.OptionalModel
		result := db.Where("name = ?", name).First(&existing)
		if result.Error == nil {
			continue
		}

		optional := models.OptionalModel{Name: name}
		if err := db.Create(&optional).Error; err != nil {
			log.Printf("Failed to create optional %q: %v\n", name, err)
		} else {
			created++
		}
	}

	if created > 0 {
		log.Printf("Seeded %d optionals\n", created)
	} else {
		log.Println("Optional catalog already seeded")
	}
}
