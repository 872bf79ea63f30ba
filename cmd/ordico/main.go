package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/FedericoMusa/ordico2/internal/application/auth"
	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/application/usecase"
	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/email"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/excel"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/sqlite"
	"github.com/FedericoMusa/ordico2/pkg/config"
	"github.com/FedericoMusa/ordico2/pkg/logger"
	"github.com/FedericoMusa/ordico2/pkg/security"
)

// app agrupa los casos de uso y el estado de la sesión interactiva.
type app struct {
	auth     *auth.UseCase
	users    *usecase.UserUseCase
	products *usecase.ProductUseCase
	importer *usecase.ImportUseCase
	log      *logger.Logger
	in       *bufio.Scanner
	session  *dto.UserView
}

func main() {
	_ = godotenv.Load() // opcional, como el resto de la configuración

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Str("app", cfg.App.Name).Str("db", cfg.DB.Path).Msg("iniciando aplicación")

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()
	if err := sqlite.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	hasher := security.NewHasher(cfg.Auth.HashIterations)

	var mailer auth.Mailer
	if cfg.SMTP.Enabled() {
		mailer = email.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP sin configurar: la recuperación mostrará la contraseña por pantalla")
	}

	a := &app{
		auth:     auth.NewUseCase(userRepo, hasher, mailer, log, auth.Config{DefaultRole: cfg.Auth.DefaultRole}),
		users:    usecase.NewUserUseCase(userRepo, log),
		products: usecase.NewProductUseCase(productRepo, log),
		importer: usecase.NewImportUseCase(productRepo, log),
		log:      log,
		in:       bufio.NewScanner(os.Stdin),
	}
	a.run(cfg.App.Name)
}

func (a *app) run(name string) {
	fmt.Printf("=== %s ===\n", strings.ToUpper(name))
	for {
		if a.session == nil {
			if !a.loginMenu() {
				return
			}
			continue
		}
		if !a.mainMenu() {
			return
		}
	}
}

// loginMenu devuelve false cuando el usuario elige salir.
func (a *app) loginMenu() bool {
	fmt.Println("\n1) Iniciar sesión  2) Registrarse  3) Recuperar contraseña  0) Salir")
	switch a.prompt("Opción") {
	case "1":
		a.login()
	case "2":
		a.register()
	case "3":
		a.recover()
	case "0":
		return false
	}
	return true
}

func (a *app) login() {
	identifier := a.prompt("Usuario o email")
	password := a.prompt("Contraseña")
	view, err := a.auth.Authenticate(identifier, password)
	if err != nil {
		// No distinguir usuario inexistente de contraseña errónea.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			fmt.Println("Error:", domain.CredentialMessage)
		} else {
			fmt.Println("Error:", friendly(err))
		}
		return
	}
	a.session = view
	fmt.Printf("Bienvenido %s (%s)\n", view.Username, view.Role)
}

func (a *app) register() {
	in := dto.RegisterRequest{
		Username: a.prompt("Nombre de usuario"),
		Password: a.prompt("Contraseña"),
		Email:    a.prompt("Email"),
		DNI:      a.prompt("DNI"),
		Role:     a.prompt("Rol (vacío = por defecto)"),
	}
	result, err := a.auth.Register(in)
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Printf("Usuario registrado exitosamente como %s.\n", result.AssignedRole)
}

func (a *app) recover() {
	result, err := a.auth.RecoverPassword(a.prompt("DNI"))
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	if result.MailSent {
		fmt.Printf("Se envió una contraseña temporal a %s.\n", result.Email)
	} else {
		fmt.Printf("Tu nueva contraseña es: %s\n", result.TempPassword)
	}
}

// mainMenu devuelve false cuando el usuario elige salir del programa.
func (a *app) mainMenu() bool {
	fmt.Printf("\n[%s - %s]\n", a.session.Username, a.session.Role)
	fmt.Println("1) Ver stock  2) Buscar  3) Agregar producto  4) Editar  5) Eliminar")
	fmt.Println("6) Importar planilla  7) Exportar stock  8) Cambiar contraseña")
	if a.session.Role == entity.RoleAdmin {
		fmt.Println("9) Administrar usuarios")
	}
	fmt.Println("10) Cerrar sesión  0) Salir")

	switch a.prompt("Opción") {
	case "1":
		a.listStock("")
	case "2":
		a.listStock(a.prompt("Buscar producto"))
	case "3":
		a.addProduct()
	case "4":
		a.editProduct()
	case "5":
		a.deleteProduct()
	case "6":
		a.importStock()
	case "7":
		a.exportStock()
	case "8":
		a.changePassword()
	case "9":
		if a.session.Role == entity.RoleAdmin {
			a.manageUsers()
		}
	case "10":
		a.log.Info().Str("username", a.session.Username).Msg("sesión cerrada")
		a.session = nil
	case "0":
		return false
	}
	return true
}

func (a *app) listStock(term string) {
	var (
		items []dto.ProductResponse
		err   error
	)
	if term == "" {
		items, err = a.products.List()
	} else {
		items, err = a.products.Search(term)
	}
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	if len(items) == 0 {
		fmt.Println("Sin productos.")
		return
	}
	fmt.Printf("%-36s  %-25s  %-22s  %8s  %10s\n", "ID", "Nombre", "Categoría", "Cantidad", "Precio")
	for _, p := range items {
		fmt.Printf("%-36s  %-25s  %-22s  %8d  %10s\n", p.ID, p.Name, p.Category, p.Quantity, p.Price.StringFixed(2))
	}
}

func (a *app) addProduct() {
	name := a.prompt("Nombre")
	category := a.prompt("Categoría")
	quantity, err := strconv.Atoi(a.prompt("Cantidad"))
	if err != nil {
		fmt.Println("Error: cantidad inválida")
		return
	}
	price, err := decimal.NewFromString(a.prompt("Precio"))
	if err != nil {
		fmt.Println("Error: precio inválido")
		return
	}
	if _, err := a.products.Create(dto.CreateProductRequest{
		Name: name, Category: category, Quantity: quantity, Price: price,
	}); err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Println("Producto agregado correctamente.")
}

func (a *app) editProduct() {
	id := a.prompt("ID del producto")
	var in dto.UpdateProductRequest
	if s := a.prompt("Nuevo nombre (vacío = sin cambio)"); s != "" {
		in.Name = &s
	}
	if s := a.prompt("Nueva categoría (vacío = sin cambio)"); s != "" {
		in.Category = &s
	}
	if s := a.prompt("Nueva cantidad (vacío = sin cambio)"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Println("Error: cantidad inválida")
			return
		}
		in.Quantity = &n
	}
	if s := a.prompt("Nuevo precio (vacío = sin cambio)"); s != "" {
		p, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Println("Error: precio inválido")
			return
		}
		in.Price = &p
	}
	if _, err := a.products.Update(id, in); err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Println("Producto actualizado.")
}

func (a *app) deleteProduct() {
	if err := a.products.Delete(a.prompt("ID del producto")); err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Println("Producto eliminado.")
}

func (a *app) importStock() {
	path := a.prompt("Ruta de la planilla (.xlsx o .csv)")
	rows, skipped, err := readSpreadsheet(path)
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	report, err := a.importer.Import(rows, skipped)
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Printf("Importados: %d, rechazados: %d\n", report.Imported, len(report.Skipped))
	for _, s := range report.Skipped {
		fmt.Printf("  fila %d: %s\n", s.Row, s.Reason)
	}
}

func (a *app) exportStock() {
	path := a.prompt("Archivo de salida (.xlsx)")
	items, err := a.products.List()
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	if err := excel.WriteProducts(path, items); err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Printf("Stock exportado a %s (%d productos).\n", path, len(items))
}

func (a *app) changePassword() {
	current := a.prompt("Contraseña actual")
	next := a.prompt("Contraseña nueva")
	if err := a.auth.ChangePassword(a.session.Email, current, next); err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Println("Contraseña actualizada.")
}

func (a *app) manageUsers() {
	views, err := a.users.List()
	if err != nil {
		fmt.Println("Error:", friendly(err))
		return
	}
	fmt.Printf("%-36s  %-20s  %-30s  %-12s  %s\n", "ID", "Usuario", "Email", "DNI", "Rol")
	for _, v := range views {
		fmt.Printf("%-36s  %-20s  %-30s  %-12s  %s\n", v.ID, v.Username, v.Email, v.DNI, v.Role)
	}
	fmt.Println("\n1) Cambiar rol  2) Eliminar usuario  0) Volver")
	switch a.prompt("Opción") {
	case "1":
		id := a.prompt("ID del usuario")
		role := a.prompt("Nuevo rol (admin/cajero/vendedor/usuario)")
		if err := a.users.UpdateRole(id, role); err != nil {
			fmt.Println("Error:", friendly(err))
			return
		}
		fmt.Println("Rol actualizado.")
	case "2":
		if err := a.users.Delete(a.prompt("ID del usuario")); err != nil {
			fmt.Println("Error:", friendly(err))
			return
		}
		fmt.Println("Usuario eliminado.")
	}
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// readSpreadsheet elige el lector según la extensión.
func readSpreadsheet(path string) ([]dto.ProductRow, []dto.ImportError, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return excel.ReadProductsCSV(path)
	default:
		return excel.ReadProducts(path)
	}
}

// friendly traduce los errores de dominio a mensajes de pantalla; cualquier
// otro error se muestra genérico y queda el detalle en el log.
func friendly(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrDuplicateField),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidCredentials):
		return err.Error()
	default:
		return "ocurrió un error inesperado; revisá el log"
	}
}
