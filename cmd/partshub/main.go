package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"partshub/internal/bootstrap"
	cartdto "partshub/internal/modules/cart/dto"
	garagedto "partshub/internal/modules/garage/dto"
	"partshub/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir string

	root := &cobra.Command{
		Use:           "partshub",
		Short:         "Auto parts store and garage client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state", defaultStateDir(), "state directory (config, cache, logs)")

	root.AddCommand(newTUICmd(&stateDir))
	root.AddCommand(newWhoAmICmd(&stateDir))
	root.AddCommand(newSearchCmd(&stateDir))
	root.AddCommand(newHistoryCmd(&stateDir))
	root.AddCommand(newCartCmd(&stateDir))
	root.AddCommand(newOrdersCmd(&stateDir))
	root.AddCommand(newGarageCmd(&stateDir))
	root.AddCommand(newAdminCmd(&stateDir))
	root.AddCommand(newPluginCmd(&stateDir))
	return root
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".partshub"
	}
	return filepath.Join(home, ".partshub")
}

func loadApp(stateDir string) (*bootstrap.App, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	cfg, err := config.New(stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(stateDir *string) *cobra.Command {
	var vin string
	tui := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive store client",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app, vin)
		},
	}
	tui.Flags().StringVar(&vin, "vin", "", "open the VIN search screen with this VIN prefilled")
	return tui
}

func newWhoAmICmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resolved session identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.IdentityCLI.WhoAmI(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "telegram_id=%d username=%s name=%q host=%t\n",
				out.TelegramID, out.Username, out.Name, app.Bridge.Present())
			return nil
		},
	}
}

func newSearchCmd(stateDir *string) *cobra.Command {
	search := &cobra.Command{Use: "search", Short: "Parts catalog search"}

	var availability, sortBy string
	article := &cobra.Command{
		Use:   "article <code>",
		Short: "Search parts by article code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			parts, err := app.CatalogCLI.SearchArticle(context.Background(), args[0], availability, sortBy)
			if err != nil {
				return err
			}
			if len(parts) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no offers")
				return nil
			}
			for _, p := range parts {
				stock := "on order"
				if p.InStock {
					stock = "in stock"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.2f\t%dd\t%s\n",
					p.Article, p.Brand, p.Supplier, p.Price, p.DeliveryDays, stock)
			}
			return nil
		},
	}
	article.Flags().StringVar(&availability, "availability", "", "filter: in_stock_tyumen|on_order")
	article.Flags().StringVar(&sortBy, "sort", "", "sort: price_asc|price_desc|delivery_asc")
	search.AddCommand(article)

	var partName string
	vin := &cobra.Command{
		Use:   "vin <vin>",
		Short: "Find OEM part numbers by VIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(partName) == "" {
				return fmt.Errorf("--part is required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.SearchVIN(context.Background(), args[0], partName)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "vehicle: %s %s (vin %s)\n", out.VehicleBrand, out.VehicleName, out.VIN)
			if len(out.Parts) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matching parts")
				return nil
			}
			for _, p := range out.Parts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.Article, p.Name, p.Source)
			}
			return nil
		},
	}
	vin.Flags().StringVar(&partName, "part", "", "part name to look up")
	search.AddCommand(vin)
	return search
}

func newHistoryCmd(stateDir *string) *cobra.Command {
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			entries, err := app.CatalogCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no searches yet")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d results\t%s\n",
					e.At.Format("2006-01-02 15:04"), e.Kind, e.Results, e.Query)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 10, "entries to show")
	return history
}

func newCartCmd(stateDir *string) *cobra.Command {
	cart := &cobra.Command{Use: "cart", Short: "Cart operations"}

	cart.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show cart contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.Show(context.Background())
			if err != nil {
				return err
			}
			printCart(cmd, out.Lines, out.Total)
			return nil
		},
	})

	var brand, supplier string
	var price float64
	var delivery, quantity int
	add := &cobra.Command{
		Use:   "add <article>",
		Short: "Add an offer to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.Add(context.Background(), args[0], brand, supplier, price, delivery, quantity)
			if err != nil {
				return err
			}
			printCart(cmd, out.Lines, out.Total)
			return nil
		},
	}
	add.Flags().StringVar(&brand, "brand", "", "part brand")
	add.Flags().StringVar(&supplier, "supplier", "", "supplier name")
	add.Flags().Float64Var(&price, "price", 0, "unit price")
	add.Flags().IntVar(&delivery, "delivery", 0, "delivery days")
	add.Flags().IntVar(&quantity, "qty", 1, "quantity")
	cart.AddCommand(add)

	var updateQty int
	update := &cobra.Command{
		Use:   "update <article>",
		Short: "Change a line's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.Update(context.Background(), args[0], updateQty)
			if err != nil {
				return err
			}
			printCart(cmd, out.Lines, out.Total)
			return nil
		},
	}
	update.Flags().IntVar(&updateQty, "qty", 1, "new quantity")
	cart.AddCommand(update)

	var yes bool
	remove := &cobra.Command{
		Use:   "remove <article>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("removal needs confirmation; pass --yes")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.Remove(context.Background(), args[0], yes)
			if err != nil {
				return err
			}
			printCart(cmd, out.Lines, out.Total)
			return nil
		},
	}
	remove.Flags().BoolVar(&yes, "yes", false, "confirm the removal")
	cart.AddCommand(remove)
	return cart
}

func newOrdersCmd(stateDir *string) *cobra.Command {
	orders := &cobra.Command{Use: "orders", Short: "Order operations"}

	var name, phone, address string
	checkout := &cobra.Command{
		Use:   "checkout --name <name> --phone <phone>",
		Short: "Place an order from the current cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
				return fmt.Errorf("--name and --phone are required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.OrdersCLI.Checkout(context.Background(), name, phone, address)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "order placed: %s total=%.2f\n", out.OrderID, out.Total)
			return nil
		},
	}
	checkout.Flags().StringVar(&name, "name", "", "recipient name")
	checkout.Flags().StringVar(&phone, "phone", "", "contact phone")
	checkout.Flags().StringVar(&address, "address", "", "delivery address (optional)")
	orders.AddCommand(checkout)

	orders.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List placed orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.OrdersCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no orders")
				return nil
			}
			for _, o := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.2f\t%d items\t%s\n",
					o.ID, o.Status, o.Total, len(o.Items), o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	})

	orders.AddCommand(&cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			o, err := app.OrdersCLI.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "order %s status=%s placed=%s\n", o.ID, o.Status, o.CreatedAt.Format(time.RFC3339))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recipient: %s %s %s\n", o.Name, o.Phone, o.Address)
			for _, item := range o.Items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s %s x%d %.2f (%s, %dd)\n",
					item.Article, item.Brand, item.Quantity, item.Price, item.Supplier, item.DeliveryDays)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total: %.2f\n", o.Total)
			return nil
		},
	})
	return orders
}

func newGarageCmd(stateDir *string) *cobra.Command {
	garage := &cobra.Command{Use: "garage", Short: "Vehicle garage operations"}
	garage.AddCommand(newVehicleCmd(stateDir))
	garage.AddCommand(newServiceCmd(stateDir))
	garage.AddCommand(newLogCmd(stateDir))
	garage.AddCommand(newReminderCmd(stateDir))
	garage.AddCommand(newExpensesCmd(stateDir))
	garage.AddCommand(newDiagnoseCmd(stateDir))
	return garage
}

func newVehicleCmd(stateDir *string) *cobra.Command {
	vehicle := &cobra.Command{Use: "vehicle", Short: "Manage vehicles"}

	vehicle.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List garage vehicles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			vehicles, err := app.GarageCLI.ListVehicles(context.Background())
			if err != nil {
				return err
			}
			if len(vehicles) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "garage is empty")
				return nil
			}
			for _, v := range vehicles {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tvin=%s\tmileage=%d\n", v.ID, v.Label, v.VIN, v.Mileage)
			}
			return nil
		},
	})

	var makeName, model, vin, plate string
	var year, mileage int
	add := &cobra.Command{
		Use:   "add --make <make> --model <model> --year <year>",
		Short: "Add a vehicle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			v, err := app.GarageCLI.AddVehicle(context.Background(), makeName, model, year, mileage, vin, plate)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", v.Label, v.ID)
			return nil
		},
	}
	add.Flags().StringVar(&makeName, "make", "", "vehicle make")
	add.Flags().StringVar(&model, "model", "", "vehicle model")
	add.Flags().IntVar(&year, "year", 0, "production year")
	add.Flags().IntVar(&mileage, "mileage", 0, "current mileage, km")
	add.Flags().StringVar(&vin, "vin", "", "17-character VIN (optional)")
	add.Flags().StringVar(&plate, "plate", "", "license plate (optional)")
	vehicle.AddCommand(add)

	var yes bool
	remove := &cobra.Command{
		Use:   "remove <vehicle-id>",
		Short: "Remove a vehicle and its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("removal needs confirmation; pass --yes")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if err := app.GarageCLI.RemoveVehicle(context.Background(), args[0], yes); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "vehicle removed")
			return nil
		},
	}
	remove.Flags().BoolVar(&yes, "yes", false, "confirm the removal")
	vehicle.AddCommand(remove)
	return vehicle
}

func newServiceCmd(stateDir *string) *cobra.Command {
	service := &cobra.Command{Use: "service", Short: "Service history"}

	var vehicleID string
	list := &cobra.Command{
		Use:   "list --vehicle-id <id>",
		Short: "List service records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(vehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			records, err := app.GarageCLI.ServiceHistory(context.Background(), vehicleID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no service records")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%dkm\t%.2f\t%s\n",
					r.ID, r.Date.Format("2006-01-02"), r.Type, r.Mileage, r.Cost, r.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&vehicleID, "vehicle-id", "", "vehicle id")
	service.AddCommand(list)

	var serviceType, title, date string
	var mileage int
	var cost float64
	var addVehicleID string
	add := &cobra.Command{
		Use:   "add --vehicle-id <id> --type <type> --title <title>",
		Short: "Record a service visit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addVehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			when := time.Now()
			if strings.TrimSpace(date) != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				when = parsed
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			r, err := app.GarageCLI.AddServiceRecord(context.Background(), addVehicleID, serviceType, title, mileage, cost, when)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (%s)\n", r.Title, r.ID)
			return nil
		},
	}
	add.Flags().StringVar(&addVehicleID, "vehicle-id", "", "vehicle id")
	add.Flags().StringVar(&serviceType, "type", "general_maintenance", "oil_change|tire_change|brake_service|general_maintenance|repair|other")
	add.Flags().StringVar(&title, "title", "", "what was done")
	add.Flags().IntVar(&mileage, "mileage", 0, "mileage at service, km")
	add.Flags().Float64Var(&cost, "cost", 0, "total cost")
	add.Flags().StringVar(&date, "date", "", "service date, YYYY-MM-DD (default today)")
	service.AddCommand(add)
	return service
}

func newLogCmd(stateDir *string) *cobra.Command {
	logCmd := &cobra.Command{Use: "log", Short: "Board journal"}

	var vehicleID string
	list := &cobra.Command{
		Use:   "list --vehicle-id <id>",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(vehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			entries, err := app.GarageCLI.Journal(context.Background(), vehicleID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "journal is empty")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					e.ID, e.Date.Format("2006-01-02"), e.Type, e.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&vehicleID, "vehicle-id", "", "vehicle id")
	logCmd.AddCommand(list)

	var in garagedto.LogEntryInput
	var date string
	add := &cobra.Command{
		Use:   "add --vehicle-id <id> --type <type> --title <title>",
		Short: "Add a journal entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(in.VehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			in.Date = time.Now()
			if strings.TrimSpace(date) != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				in.Date = parsed
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			e, err := app.GarageCLI.AddLogEntry(context.Background(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s (%s)\n", e.Title, e.ID)
			return nil
		},
	}
	add.Flags().StringVar(&in.VehicleID, "vehicle-id", "", "vehicle id")
	add.Flags().StringVar(&in.Type, "type", "note", "refuel|trip|note|expense|diagnostic")
	add.Flags().StringVar(&in.Title, "title", "", "entry title")
	add.Flags().StringVar(&in.Description, "description", "", "entry description")
	add.Flags().Float64Var(&in.FuelAmount, "fuel-amount", 0, "liters refueled")
	add.Flags().Float64Var(&in.FuelCost, "fuel-cost", 0, "refuel cost")
	add.Flags().StringVar(&in.FuelType, "fuel-type", "", "fuel grade")
	add.Flags().IntVar(&in.TripDistance, "trip-distance", 0, "trip distance, km")
	add.Flags().StringVar(&in.TripPurpose, "trip-purpose", "", "trip purpose")
	add.Flags().Float64Var(&in.ExpenseAmount, "expense-amount", 0, "expense amount")
	add.Flags().StringVar(&in.ExpenseCategory, "expense-category", "", "expense category")
	add.Flags().IntVar(&in.Mileage, "mileage", 0, "odometer reading, km")
	add.Flags().StringVar(&date, "date", "", "entry date, YYYY-MM-DD (default today)")
	logCmd.AddCommand(add)
	return logCmd
}

func newReminderCmd(stateDir *string) *cobra.Command {
	reminder := &cobra.Command{Use: "reminder", Short: "Maintenance reminders"}

	var vehicleID string
	list := &cobra.Command{
		Use:   "list --vehicle-id <id>",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(vehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			reminders, err := app.GarageCLI.Reminders(context.Background(), vehicleID)
			if err != nil {
				return err
			}
			if len(reminders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no reminders")
				return nil
			}
			for _, r := range reminders {
				marker := " "
				switch {
				case r.Completed:
					marker = "done"
				case r.Due:
					marker = "due"
				}
				trigger := ""
				if !r.RemindAtDate.IsZero() {
					trigger = r.RemindAtDate.Format("2006-01-02")
				}
				if r.RemindAtMileage > 0 {
					if trigger != "" {
						trigger += " / "
					}
					trigger += fmt.Sprintf("%dkm", r.RemindAtMileage)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\t%s\t%s\n", r.ID, marker, r.Type, trigger, r.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&vehicleID, "vehicle-id", "", "vehicle id")
	reminder.AddCommand(list)

	var in garagedto.ReminderInput
	var remindDate string
	add := &cobra.Command{
		Use:   "add --vehicle-id <id> --title <title>",
		Short: "Add a reminder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(in.VehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			if strings.TrimSpace(remindDate) != "" {
				parsed, err := time.Parse("2006-01-02", remindDate)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				in.RemindAtDate = parsed
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			r, err := app.GarageCLI.AddReminder(context.Background(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reminder set: %s (%s)\n", r.Title, r.ID)
			return nil
		},
	}
	add.Flags().StringVar(&in.VehicleID, "vehicle-id", "", "vehicle id")
	add.Flags().StringVar(&in.Type, "type", "custom", "service|insurance|inspection|custom")
	add.Flags().StringVar(&in.Title, "title", "", "reminder title")
	add.Flags().StringVar(&in.Description, "description", "", "reminder description")
	add.Flags().StringVar(&remindDate, "date", "", "remind at date, YYYY-MM-DD")
	add.Flags().IntVar(&in.RemindAtMileage, "mileage", 0, "remind at mileage, km")
	reminder.AddCommand(add)

	reminder.AddCommand(&cobra.Command{
		Use:   "complete <reminder-id>",
		Short: "Mark a reminder completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if err := app.GarageCLI.CompleteReminder(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reminder completed")
			return nil
		},
	})
	return reminder
}

func newExpensesCmd(stateDir *string) *cobra.Command {
	var vehicleID, period string
	expenses := &cobra.Command{
		Use:   "expenses --vehicle-id <id>",
		Short: "Show expense summary by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(vehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.GarageCLI.Expenses(context.Background(), vehicleID, period)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "period=%s total=%.2f\n", out.Period, out.Total)
			for _, c := range out.Categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\t%.1f%%\t%d entries\n", c.Name, c.Total, c.Percentage, c.Count)
			}
			return nil
		},
	}
	expenses.Flags().StringVar(&vehicleID, "vehicle-id", "", "vehicle id")
	expenses.Flags().StringVar(&period, "period", "all", "all|month|3months|year")
	return expenses
}

func newDiagnoseCmd(stateDir *string) *cobra.Command {
	var vehicleID string
	diagnose := &cobra.Command{
		Use:   "diagnose <code>",
		Short: "Decode an OBD-II trouble code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(vehicleID) == "" {
				return fmt.Errorf("--vehicle-id is required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			d, err := app.GarageCLI.Diagnose(context.Background(), vehicleID, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n", d.Code, d.Severity, d.Summary)
			if d.Description != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.Description)
			}
			for _, cause := range d.PossibleCauses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  cause: %s\n", cause)
			}
			for _, action := range d.RecommendedActions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  action: %s\n", action)
			}
			if d.FromCache {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(cached)")
			}
			if d.Offline {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(offline decoder)")
			}
			return nil
		},
	}
	diagnose.Flags().StringVar(&vehicleID, "vehicle-id", "", "vehicle id")
	return diagnose
}

func newAdminCmd(stateDir *string) *cobra.Command {
	admin := &cobra.Command{Use: "admin", Short: "Store administration"}

	admin.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			stats, err := app.AdminCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "users=%d orders=%d revenue=%.2f searches=%d\n",
				stats.TotalUsers, stats.TotalOrders, stats.TotalRevenue, stats.TotalSearches)
			for _, q := range stats.PopularQueries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d)\n", q.Query, q.Count)
			}
			return nil
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			users, err := app.AdminCLI.Users(context.Background())
			if err != nil {
				return err
			}
			for _, u := range users {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					u.TelegramID, u.Username, u.Name, u.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	})

	var limit, skip int
	activity := &cobra.Command{
		Use:   "activity",
		Short: "Show the user activity feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			feed, err := app.AdminCLI.Activity(context.Background(), limit, skip)
			if err != nil {
				return err
			}
			for _, a := range feed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n",
					a.Timestamp.Format("2006-01-02 15:04"), a.TelegramID, a.Action)
			}
			return nil
		},
	}
	activity.Flags().IntVar(&limit, "limit", 20, "entries to show")
	activity.Flags().IntVar(&skip, "skip", 0, "entries to skip")
	admin.AddCommand(activity)

	admin.AddCommand(&cobra.Command{
		Use:   "settings",
		Short: "Show store settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			settings, err := app.AdminCLI.Settings(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "markup=%.1f%% updated=%s\n",
				settings.MarkupPercent, settings.UpdatedAt.Format(time.RFC3339))
			return nil
		},
	})

	var percent float64
	markup := &cobra.Command{
		Use:   "markup --percent <value>",
		Short: "Set the store markup percent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if err := app.AdminCLI.SetMarkup(context.Background(), percent); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "markup set to %.1f%%\n", percent)
			return nil
		},
	}
	markup.Flags().Float64Var(&percent, "percent", 0, "markup percent")
	admin.AddCommand(markup)
	return admin
}

func newPluginCmd(stateDir *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Diagnostic decoder plugins"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List decoder manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t systems=%s binary=%s\n",
					p.Name, p.Version, p.Enabled, strings.Join(p.Systems, ","), p.Binary)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate decoder checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t",
					r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var vehicle string
	decode := &cobra.Command{
		Use:   "decode <code>",
		Short: "Decode a trouble code through the plugin chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.PluginCLI.Decode(context.Background(), args[0], vehicle)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s (plugin %s)\n", out.Code, out.Severity, out.Summary, out.Plugin)
			if out.Description != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Description)
			}
			for _, cause := range out.PossibleCauses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  cause: %s\n", cause)
			}
			for _, action := range out.RecommendedActions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  action: %s\n", action)
			}
			return nil
		},
	}
	decode.Flags().StringVar(&vehicle, "vehicle", "", "vehicle label for context (optional)")
	plugin.AddCommand(decode)
	return plugin
}

func printCart(cmd *cobra.Command, lines []cartdto.LineOutput, total float64) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tx%d\t%.2f\t%.2f\n",
			line.Article, line.Brand, line.Quantity, line.Price, line.Subtotal)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total: %.2f\n", total)
}
