// file: internals/databases/seeds/seeder.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	"alumniku_backend/internals/constants"
	academicModel "alumniku_backend/internals/features/academics/model"
	profileModel "alumniku_backend/internals/features/alumni/profile/model"
	eventModel "alumniku_backend/internals/features/events/model"
	msgModel "alumniku_backend/internals/features/messages/model"
	authService "alumniku_backend/internals/features/users/auth/service"
	userModel "alumniku_backend/internals/features/users/user/model"
)

// Run: migrasi schema + seed data referensi. Idempotent — aman dipanggil
// setiap boot.
func Run(db *gorm.DB) {
	migrate(db)
	seedSchools(db)
	seedAdmin(db)
}

func migrate(db *gorm.DB) {
	log.Println("🔧 AutoMigrate...")
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&academicModel.SchoolModel{},
		&academicModel.CourseModel{},
		&profileModel.AlumniProfileModel{},
		&eventModel.EventModel{},
		&msgModel.MessageModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Schema up to date.")
}

// seedSchools: upsert katalog school & course by name.
func seedSchools(db *gorm.DB) {
	for _, s := range schoolCatalogue {
		school := academicModel.SchoolModel{Name: s.Name, Color: s.Color}
		if err := db.Where("name = ?", s.Name).FirstOrCreate(&school).Error; err != nil {
			log.Printf("⚠️ Seed school %q gagal: %v", s.Name, err)
			continue
		}
		for _, c := range s.Courses {
			course := academicModel.CourseModel{
				SchoolID:   school.ID,
				Name:       c.Name,
				DegreeType: c.DegreeType,
			}
			if err := db.Where("school_id = ? AND name = ?", school.ID, c.Name).
				FirstOrCreate(&course).Error; err != nil {
				log.Printf("⚠️ Seed course %q gagal: %v", c.Name, err)
			}
		}
	}
	log.Println("✅ Katalog school & course siap.")
}

// seedAdmin: bootstrap akun admin dari ENV. Tanpa ENV → dilewati,
// tidak pernah pakai kredensial hardcoded.
func seedAdmin(db *gorm.DB) {
	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD kosong, seeder admin dilewati.")
		return
	}

	var n int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", configs.AdminEmail).
		Count(&n).Error; err != nil {
		log.Printf("⚠️ Cek admin gagal: %v", err)
		return
	}
	if n > 0 {
		return
	}

	hashed, err := authService.HashPassword(configs.AdminPassword)
	if err != nil {
		log.Printf("⚠️ Hash password admin gagal: %v", err)
		return
	}
	admin := userModel.UserModel{
		Email:    configs.AdminEmail,
		Password: hashed,
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ Seed admin gagal: %v", err)
		return
	}
	log.Printf("✅ Admin %s dibuat.", configs.AdminEmail)
}
