package main

import (
	auth "Pylon/internal/auth"
	analysis "Pylon/internal/calc/analysis"
	axial "Pylon/internal/calc/axial"
	batch "Pylon/internal/calc/batch"
	export "Pylon/internal/calc/export"
	importer "Pylon/internal/calc/importer"
	lateral "Pylon/internal/calc/lateral"
	report "Pylon/internal/calc/report"
	transfer "Pylon/internal/calc/transfer"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}
	operatorLogin := os.Getenv("OPERATOR_LOGIN")
	operatorHash := os.Getenv("OPERATOR_PASSWORD_HASH")
	if operatorLogin == "" || operatorHash == "" {
		log.Fatal("OPERATOR_LOGIN and OPERATOR_PASSWORD_HASH must be set")
	}

	authEnv := &auth.Authenv{
		JWTkey:        []byte(tokenKey),
		OperatorLogin: operatorLogin,
		OperatorHash:  operatorHash,
	}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	axialH := &axial.Handler{}
	lateralH := &lateral.Handler{}
	transferH := &transfer.Handler{}
	analysisH := &analysis.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/axial/capacity", axialH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/lateral/py", lateralH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/transfer/tz", transferH.CalcTZ).Methods("POST")
	secureApi.HandleFunc("/tools/transfer/qz", transferH.CalcQZ).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/run", analysisH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/import", importerH.Profile).Methods("POST")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.Workbook).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mux := mux.NewRouter()
	HandleList(mux)
	handler := CORS(mux)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
