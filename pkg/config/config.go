package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log     LogConfig
	Student StudentConfig
	Export  ExportConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// StudentConfig holds the raw record fed to the demo. Numeric values keep
// their declared widths; range checks are left to the record constructor.
type StudentConfig struct {
	FirstName          string
	LastName           string
	YearOfBirth        uint16
	MonthAndDayOfBirth uint16
	Gender             string
	LRN                uint64
	SchoolID           uint32
	GradeLevel         string
	LastGradeAverage   uint8
}

// ExportConfig controls optional roster output.
type ExportConfig struct {
	PDFPath string
	Title   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	year, err := parseUint(v, "STUDENT_YEAR_OF_BIRTH", 16)
	if err != nil {
		return nil, err
	}
	monthDay, err := parseUint(v, "STUDENT_MONTH_AND_DAY_OF_BIRTH", 16)
	if err != nil {
		return nil, err
	}
	lrn, err := parseUint(v, "STUDENT_LRN", 64)
	if err != nil {
		return nil, err
	}
	schoolID, err := parseUint(v, "STUDENT_SCHOOL_ID", 32)
	if err != nil {
		return nil, err
	}
	average, err := parseUint(v, "STUDENT_LAST_GRADE_AVERAGE", 8)
	if err != nil {
		return nil, err
	}

	cfg.Student = StudentConfig{
		FirstName:          v.GetString("STUDENT_FIRST_NAME"),
		LastName:           v.GetString("STUDENT_LAST_NAME"),
		YearOfBirth:        uint16(year),
		MonthAndDayOfBirth: uint16(monthDay),
		Gender:             v.GetString("STUDENT_GENDER"),
		LRN:                lrn,
		SchoolID:           uint32(schoolID),
		GradeLevel:         v.GetString("STUDENT_GRADE_LEVEL"),
		LastGradeAverage:   uint8(average),
	}

	cfg.Export = ExportConfig{
		PDFPath: v.GetString("EXPORT_PDF_PATH"),
		Title:   v.GetString("EXPORT_TITLE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	// Deliberately out of range on every numeric field.
	v.SetDefault("STUDENT_FIRST_NAME", "Firstname")
	v.SetDefault("STUDENT_LAST_NAME", "Lastname")
	v.SetDefault("STUDENT_YEAR_OF_BIRTH", 13001)
	v.SetDefault("STUDENT_MONTH_AND_DAY_OF_BIRTH", 1982)
	v.SetDefault("STUDENT_GENDER", "Male")
	v.SetDefault("STUDENT_LRN", uint64(123456789012345))
	v.SetDefault("STUDENT_SCHOOL_ID", 12345678)
	v.SetDefault("STUDENT_GRADE_LEVEL", "Masteral")
	v.SetDefault("STUDENT_LAST_GRADE_AVERAGE", 255)

	v.SetDefault("EXPORT_PDF_PATH", "")
	v.SetDefault("EXPORT_TITLE", "Student Roster")
}

// parseUint reads key as a base-10 unsigned integer of the given width.
// Leading zeros are kept decimal, so "0420" is 420.
func parseUint(v *viper.Viper, key string, bits int) (uint64, error) {
	raw := strings.TrimSpace(v.GetString(key))
	value, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("config %s: %q is not a %d-bit unsigned integer: %w", key, raw, bits, err)
	}
	return value, nil
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
