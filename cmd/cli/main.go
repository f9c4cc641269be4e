package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrivas/bancario/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bancario-cli",
		Short: "Bancario CLI tool",
		Long:  `A command line interface for the bancario services.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the service API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Migration commands
	var (
		databaseURL    string
		migrationsPath string
	)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	migrateCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	migrateCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations/cuentas", "Path to migration files")

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrations(databaseURL, migrationsPath)
		},
	}

	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrationsDown(databaseURL, migrationsPath)
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)

	// Movement commands
	var (
		numeroCuenta   string
		tipoMovimiento string
		valor          string
	)

	movimientoCmd := &cobra.Command{
		Use:   "movimiento",
		Short: "Register a movement against an account",
		Run: func(cmd *cobra.Command, args []string) {
			registerMovement(numeroCuenta, tipoMovimiento, valor)
		},
	}
	movimientoCmd.Flags().StringVar(&numeroCuenta, "cuenta", "", "Account number")
	movimientoCmd.Flags().StringVar(&tipoMovimiento, "tipo", "DEPOSITO", "Movement kind (DEPOSITO or RETIRO)")
	movimientoCmd.Flags().StringVar(&valor, "valor", "0", "Amount")
	rootCmd.AddCommand(movimientoCmd)

	// Statement command
	var (
		cliente     string
		fechaInicio string
		fechaFin    string
	)

	reporteCmd := &cobra.Command{
		Use:   "reporte",
		Short: "Fetch a customer statement",
		Run: func(cmd *cobra.Command, args []string) {
			fetchStatement(cliente, fechaInicio, fechaFin)
		},
	}
	reporteCmd.Flags().StringVar(&cliente, "cliente", "", "Customer ID")
	reporteCmd.Flags().StringVar(&fechaInicio, "desde", "", "Start date (yyyy-mm-dd)")
	reporteCmd.Flags().StringVar(&fechaFin, "hasta", "", "End date (yyyy-mm-dd)")
	rootCmd.AddCommand(reporteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func registerMovement(cuenta, tipo, valor string) {
	payload, _ := json.Marshal(map[string]any{
		"numeroCuenta":   cuenta,
		"tipoMovimiento": tipo,
		"valor":          valor,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/movimientos", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Movement rejected (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Movement registered\n%s\n", string(body))
}

func fetchStatement(cliente, desde, hasta string) {
	query := url.Values{}
	query.Set("cliente", cliente)
	query.Set("fechaInicio", desde)
	query.Set("fechaFin", hasta)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/reportes?" + query.Encode())
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Statement request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
