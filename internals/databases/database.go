package database

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	authModel "steam_backend/internals/features/users/auth/model"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	regModel "steam_backend/internals/features/center/course_registrations/model"
	courseModel "steam_backend/internals/features/center/courses/model"
	checkinModel "steam_backend/internals/features/center/lesson_checkins/model"
	docModel "steam_backend/internals/features/center/lesson_documentations/model"
	evaluationModel "steam_backend/internals/features/center/lesson_evaluations/model"
	galleryModel "steam_backend/internals/features/center/lesson_galleries/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	studentRegModel "steam_backend/internals/features/center/student_registrations/model"
	studentModel "steam_backend/internals/features/center/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	configs.Log.Info("connecting to PostgreSQL")

	// statement_timeout keeps a stuck query from outliving the 5s request guard in main.go
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=steam&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		configs.Log.Fatal("failed to connect database", zap.Error(err))
	}
	DB = db
	configs.Log.Info("✅ DB connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		configs.Log.Warn("pool tune failed", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			configs.Log.Warn("warm-up ping failed", zap.Error(err))
		}
	}()
}

// AutoMigrate keeps the schema in step with the models. The partial unique indexes on
// sequence numbers are declared on the model tags.
func AutoMigrate() error {
	return DB.AutoMigrate(
		&authModel.WebUserModel{},
		&courseModel.CourseModel{},
		&classModel.ClassRoomModel{},
		&moduleModel.CourseModuleModel{},
		&lessonModel.LessonModel{},
		&lessonModel.LessonReplacementModel{},
		&galleryModel.LessonGalleryModel{},
		&studentModel.StudentModel{},
		&studentRegModel.StudentRegistrationModel{},
		&regModel.CourseRegistrationModel{},
		&evaluationModel.LessonEvaluationModel{},
		&checkinModel.LessonCheckinModel{},
		&docModel.LessonDocumentationModel{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
