package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	admininadapter "partshub/internal/modules/admin/adapter/in"
	adminoutadapter "partshub/internal/modules/admin/adapter/out"
	adminservice "partshub/internal/modules/admin/service"
	adminusecase "partshub/internal/modules/admin/usecase"
	cartinadapter "partshub/internal/modules/cart/adapter/in"
	cartoutadapter "partshub/internal/modules/cart/adapter/out"
	cartdto "partshub/internal/modules/cart/dto"
	cartservice "partshub/internal/modules/cart/service"
	cartusecase "partshub/internal/modules/cart/usecase"
	cataloginadapter "partshub/internal/modules/catalog/adapter/in"
	catalogoutadapter "partshub/internal/modules/catalog/adapter/out"
	catalogservice "partshub/internal/modules/catalog/service"
	catalogusecase "partshub/internal/modules/catalog/usecase"
	diaginadapter "partshub/internal/modules/diagplugin/adapter/in"
	diagoutadapter "partshub/internal/modules/diagplugin/adapter/out"
	diagservice "partshub/internal/modules/diagplugin/service"
	diagusecase "partshub/internal/modules/diagplugin/usecase"
	garageinadapter "partshub/internal/modules/garage/adapter/in"
	garageoutadapter "partshub/internal/modules/garage/adapter/out"
	garageservice "partshub/internal/modules/garage/service"
	garageusecase "partshub/internal/modules/garage/usecase"
	identityinadapter "partshub/internal/modules/identity/adapter/in"
	identityoutadapter "partshub/internal/modules/identity/adapter/out"
	identityin "partshub/internal/modules/identity/port/in"
	identityout "partshub/internal/modules/identity/port/out"
	identityservice "partshub/internal/modules/identity/service"
	identityusecase "partshub/internal/modules/identity/usecase"
	ordersinadapter "partshub/internal/modules/orders/adapter/in"
	ordersoutadapter "partshub/internal/modules/orders/adapter/out"
	ordersservice "partshub/internal/modules/orders/service"
	ordersusecase "partshub/internal/modules/orders/usecase"
	"partshub/internal/platform/clock"
	"partshub/internal/platform/config"
	"partshub/internal/platform/logging"
	"partshub/internal/platform/rest"
	uiapp "partshub/internal/ui/app"
)

// App is the wired object graph. The CLI handlers back the headless
// subcommands; the usecases double as the TUI screen ports.
type App struct {
	Bridge identityin.Bridge

	IdentityCLI identityinadapter.CLIHandler
	CartCLI     cartinadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler
	OrdersCLI   ordersinadapter.CLIHandler
	GarageCLI   garageinadapter.CLIHandler
	AdminCLI    admininadapter.CLIHandler
	PluginCLI   diaginadapter.CLIHandler

	identity    *identityusecase.Interactor
	cart        *cartusecase.Interactor
	cartManager *cartservice.Manager
	catalog     *catalogusecase.Interactor
	orders      *ordersusecase.Interactor
	garage      *garageusecase.Interactor
	admin       *adminusecase.Interactor
}

func New(cfg config.Config) (*App, error) {
	log, err := logging.NewFileLogger(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	clk := clock.SystemClock{}
	api := rest.NewClient(cfg.APIBaseURL, log)

	var mirror identityout.ChatMirror
	if cfg.BotToken != "" {
		mirror = identityoutadapter.NewBotMirror(cfg.BotToken)
	}
	bridge := identityservice.NewHostBridge(cfg.InitData, cfg.BotToken, mirror, log)
	telegramID := bridge.Identity().TelegramID
	identity := identityusecase.New(bridge, identityoutadapter.NewUserClient(api), log)

	cartManager := cartservice.NewManager(cartoutadapter.NewCartClient(api), telegramID, func(message string) {
		bridge.Alert(message, nil)
	}, log)
	cart := cartusecase.New(cartManager)

	history, err := catalogoutadapter.NewSQLiteHistoryStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open search history: %w", err)
	}
	catalog := catalogusecase.New(catalogservice.NewSearcher(
		catalogoutadapter.NewSearchClient(api), history, telegramID, clk, log))

	orders := ordersusecase.New(ordersservice.NewPlacer(
		ordersoutadapter.NewOrdersClient(api),
		ordersoutadapter.NewCartGateway(cartManager),
		telegramID, log))

	plugins := diagusecase.New(diagservice.NewDecoderService(
		diagoutadapter.NewFileManifestStore(cfg.StateDir),
		diagoutadapter.NewGRPCHost()))

	diagCache, err := garageoutadapter.NewSQLiteDiagnosisCache(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("open diagnosis cache: %w", err)
	}
	garage := garageusecase.New(garageservice.New(
		garageoutadapter.NewGarageClient(api),
		garageoutadapter.NewPluginDecoder(plugins),
		diagCache, telegramID, clk, log), clk)

	admin := adminusecase.New(adminservice.New(
		adminoutadapter.NewAdminClient(api), cfg.AdminID, telegramID))

	return &App{
		Bridge:      bridge,
		IdentityCLI: identityinadapter.NewCLIHandler(identity),
		CartCLI:     cartinadapter.NewCLIHandler(cart),
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalog),
		OrdersCLI:   ordersinadapter.NewCLIHandler(orders),
		GarageCLI:   garageinadapter.NewCLIHandler(garage),
		AdminCLI:    admininadapter.NewCLIHandler(admin),
		PluginCLI:   diaginadapter.NewCLIHandler(plugins),
		identity:    identity,
		cart:        cart,
		cartManager: cartManager,
		catalog:     catalog,
		orders:      orders,
		garage:      garage,
		admin:       admin,
	}, nil
}

// RunTUI starts the interactive client. deepLinkVIN carries the host
// launch parameter that lands the user on the VIN search screen.
func RunTUI(app *App, deepLinkVIN string) error {
	model := uiapp.NewModel(
		app.Bridge,
		app.identity,
		app.cart,
		app.catalog,
		app.orders,
		app.garage,
		app.admin,
		deepLinkVIN,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Host dialogs and the back gesture arrive via program.Send so they
	// run on the update loop, not on the bridge's goroutine.
	app.Bridge.SetDialogSink(programSink{program: program})
	app.Bridge.BackButton().OnClick(func() { program.Send(uiapp.BackMsg{}) })
	app.cartManager.SetOnChange(func(out cartdto.CartOutput) {
		program.Send(uiapp.CartRefreshedMsg{Cart: out})
	})
	app.Bridge.Init()

	_, err := program.Run()
	return err
}

type programSink struct {
	program *tea.Program
}

func (s programSink) ShowAlert(message string, onDismiss func()) {
	s.program.Send(uiapp.ShowAlertMsg{Message: message, OnDismiss: onDismiss})
}

func (s programSink) ShowConfirm(message string, onResult func(bool)) {
	s.program.Send(uiapp.ShowConfirmMsg{Message: message, OnResult: onResult})
}
