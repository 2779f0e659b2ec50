package services

import (
	"github.com/rs/zerolog/log"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/database"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/models"
)

// DoAutoDatabaseCleanup sweeps comments and likes whose post id no longer
// resolves. Writes deliberately skip the post existence check, so this task
// is what keeps the child tables from accumulating orphans.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up entire database...")

	posts := database.C.Model(&models.Post{}).Select("id")

	var count int64
	for _, model := range []any{&models.Comment{}, &models.Like{}} {
		if res := database.C.Where("post_id NOT IN (?)", posts).Delete(model); res.Error != nil {
			log.Error().Err(res.Error).Msg("An error occurred when cleaning up entire database...")
		} else {
			count += res.RowsAffected
		}
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
