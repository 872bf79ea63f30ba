package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App  AppConfig
	DB   DBConfig
	Auth AuthConfig
	SMTP SMTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// DBConfig configuración de la base SQLite local.
type DBConfig struct {
	Path string // ruta del archivo .db; ":memory:" para pruebas
}

// AuthConfig política de registro y hashing.
type AuthConfig struct {
	DefaultRole    string // rol asignado cuando el registro no pide uno
	HashIterations int    // iteraciones PBKDF2; 0 = valor por defecto
}

// SMTPConfig configuración del correo de recuperación de contraseña.
type SMTPConfig struct {
	Host     string
	Port     int
	Address  string // remitente y usuario de autenticación
	Password string // contraseña de aplicación
}

// Enabled indica si hay credenciales suficientes para despachar correo.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Address != "" && c.Password != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_PATH,
// AUTH_DEFAULT_ROLE, EMAIL_ADDRESS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ordico"),
		},
		DB: DBConfig{
			Path: getString(v, "DB_PATH", "ordico.db"),
		},
		Auth: AuthConfig{
			DefaultRole:    getString(v, "AUTH_DEFAULT_ROLE", "cajero"),
			HashIterations: getInt(v, "AUTH_HASH_ITERATIONS", 0),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_SERVER", "smtp.gmail.com"),
			Port:     getInt(v, "SMTP_PORT", 587),
			Address:  getString(v, "EMAIL_ADDRESS", ""),
			Password: getString(v, "EMAIL_PASSWORD", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
