package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "kursusku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// expired tiap jam, supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Unscoped().
				Where("token_blacklist_expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] Blacklist cleanup gagal: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] Blacklist cleanup: %d token dihapus", res.RowsAffected)
			}
		}
	}()
}
