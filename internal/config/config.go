package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// Поддерживаемые драйверы хранилища бронирований
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig            `toml:"server"`
	Logs             LogsConfig              `toml:"logs"`
	Metrics          MetricsConfig           `toml:"metrics"`
	Storage          StorageConfig           `toml:"storage"`
	Database         DatabaseConfig          `toml:"database"`
	Business         BusinessConfig          `toml:"business"`
	Rules            RulesConfig             `toml:"rules"`
	Admin            AdminConfig             `toml:"admin"`
	Schedule         ScheduleConfig          `toml:"schedule"`
	AppointmentTypes []AppointmentTypeConfig `toml:"appointment_types"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// Origins клиентского приложения; пустой список отключает CORS заголовки
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища бронирований
type StorageConfig struct {
	Driver  string      `toml:"driver"`
	Key     string      `toml:"key"`      // ключ списка бронирований в key-value хранилище
	FileDir string      `toml:"file_dir"` // каталог для драйвера file
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig настройки redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DatabaseConfig настройки postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BusinessConfig контактные данные мастерской
type BusinessConfig struct {
	Name    string `toml:"name" json:"name"`
	Address string `toml:"address" json:"address"`
	City    string `toml:"city" json:"city"`
	Phone   string `toml:"phone" json:"phone"`
	Email   string `toml:"email" json:"email"`
}

// RulesConfig правила бронирования
type RulesConfig struct {
	SlotStepMinutes int `toml:"slot_step_minutes"`
	LeadTimeHours   int `toml:"lead_time_hours"`
	MaxDaysAhead    int `toml:"max_days_ahead"`
	SubmitDelayMs   int `toml:"submit_delay_ms"` // косметическая задержка перед сохранением
}

// LeadTime возвращает lead time как длительность
func (r RulesConfig) LeadTime() time.Duration {
	return time.Duration(r.LeadTimeHours) * time.Hour
}

// SubmitDelay возвращает задержку перед сохранением
func (r RulesConfig) SubmitDelay() time.Duration {
	return time.Duration(r.SubmitDelayMs) * time.Millisecond
}

// AdminConfig настройки доступа к админке
// Если задан pin_hash (bcrypt), он имеет приоритет над pin
type AdminConfig struct {
	PIN     string `toml:"pin"`
	PINHash string `toml:"pin_hash"`
}

// DayConfig часы работы одного дня недели
type DayConfig struct {
	Open   string `toml:"open"`
	Close  string `toml:"close"`
	Closed bool   `toml:"closed"`
}

// ScheduleConfig недельный шаблон часов работы
type ScheduleConfig struct {
	Sunday    DayConfig `toml:"sunday"`
	Monday    DayConfig `toml:"monday"`
	Tuesday   DayConfig `toml:"tuesday"`
	Wednesday DayConfig `toml:"wednesday"`
	Thursday  DayConfig `toml:"thursday"`
	Friday    DayConfig `toml:"friday"`
	Saturday  DayConfig `toml:"saturday"`
}

// AppointmentTypeConfig тип записи из каталога
type AppointmentTypeConfig struct {
	ID              string `toml:"id"`
	Name            string `toml:"name"`
	Description     string `toml:"description"`
	Icon            string `toml:"icon"`
	DurationMinutes int    `toml:"duration_minutes"`
	BufferMinutes   int    `toml:"buffer_minutes"`
}

// Load загружает конфигурацию из TOML файла
// Переменные окружения (и .env файл, если есть) переопределяют секреты
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах)
func Parse(data string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "bikewerkstatt-booking"},
		Storage: StorageConfig{
			Driver:  StorageMemory,
			Key:     "bikewerkstatt_bookings",
			FileDir: "data",
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Rules: RulesConfig{
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
			LeadTimeHours:   domain.DefaultLeadTimeHours,
			MaxDaysAhead:    domain.DefaultMaxDaysAhead,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ADMIN_PIN"); v != "" {
		cfg.Admin.PIN = v
	}
	if v := os.Getenv("ADMIN_PIN_HASH"); v != "" {
		cfg.Admin.PINHash = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Storage.Redis.Password = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
}

// Validate проверяет инварианты конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageFile, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Rules.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Rules.LeadTimeHours < 0 {
		return fmt.Errorf("%w: lead_time_hours must not be negative", ErrInvalidConfig)
	}
	if c.Rules.MaxDaysAhead < 0 {
		return fmt.Errorf("%w: max_days_ahead must not be negative", ErrInvalidConfig)
	}

	if c.Admin.PIN == "" && c.Admin.PINHash == "" {
		return fmt.Errorf("%w: admin pin is not configured", ErrInvalidConfig)
	}

	if _, err := c.WeeklySchedule(); err != nil {
		return err
	}

	if len(c.AppointmentTypes) == 0 {
		return fmt.Errorf("%w: appointment type catalog is empty", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.AppointmentTypes))
	for _, t := range c.AppointmentTypes {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("%w: appointment type without id", ErrInvalidConfig)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate appointment type %q", ErrInvalidConfig, t.ID)
		}
		seen[t.ID] = struct{}{}

		if t.DurationMinutes <= 0 {
			return fmt.Errorf("%w: appointment type %q: duration_minutes must be positive", ErrInvalidConfig, t.ID)
		}
		if t.BufferMinutes < 0 {
			return fmt.Errorf("%w: appointment type %q: buffer_minutes must not be negative", ErrInvalidConfig, t.ID)
		}
	}

	return nil
}

// WeeklySchedule конвертирует шаблон в доменную модель
func (c *Config) WeeklySchedule() (domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule

	days := map[time.Weekday]DayConfig{
		time.Sunday:    c.Schedule.Sunday,
		time.Monday:    c.Schedule.Monday,
		time.Tuesday:   c.Schedule.Tuesday,
		time.Wednesday: c.Schedule.Wednesday,
		time.Thursday:  c.Schedule.Thursday,
		time.Friday:    c.Schedule.Friday,
		time.Saturday:  c.Schedule.Saturday,
	}

	for weekday, day := range days {
		hours, err := day.toDomain()
		if err != nil {
			return schedule, fmt.Errorf("%w: schedule %s: %v", ErrInvalidConfig, strings.ToLower(weekday.String()), err)
		}
		schedule[weekday] = hours
	}

	return schedule, nil
}

func (d DayConfig) toDomain() (domain.OpeningHours, error) {
	// День без часов работы считается выходным
	if d.Closed || (d.Open == "" && d.Close == "") {
		return domain.OpeningHours{Closed: true}, nil
	}

	open, err := types.NewTimeStringFromString(d.Open)
	if err != nil {
		return domain.OpeningHours{}, err
	}
	closeTime, err := types.NewTimeStringFromString(d.Close)
	if err != nil {
		return domain.OpeningHours{}, err
	}
	if !open.IsBefore(closeTime) {
		return domain.OpeningHours{}, fmt.Errorf("open %s must be before close %s", open, closeTime)
	}

	return domain.OpeningHours{Open: open, Close: closeTime}, nil
}

// Catalog возвращает каталог типов записи
func (c *Config) Catalog() domain.Catalog {
	catalog := make(domain.Catalog, 0, len(c.AppointmentTypes))
	for _, t := range c.AppointmentTypes {
		catalog = append(catalog, domain.AppointmentType{
			ID:              t.ID,
			Name:            t.Name,
			Description:     t.Description,
			Icon:            t.Icon,
			DurationMinutes: t.DurationMinutes,
			BufferMinutes:   t.BufferMinutes,
		})
	}
	return catalog
}
