package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	defaultRate        = 20
	defaultDuration    = 60 * time.Second
	defaultResultsFile = "load/artifacts/results.bin"
)

var resultsFile = defaultResultsFile

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

func main() {
	var (
		baseURL   = flag.String("url", defaultBaseURL, "Base URL сервиса")
		rate      = flag.Int("rate", defaultRate, "Запросов в секунду")
		duration  = flag.Duration("duration", defaultDuration, "Длительность теста (например, 60s)")
		setupOnly = flag.Bool("setup-only", false, "Только подготовка окружения (создание колеса)")
		report    = flag.Bool("report", false, "Показать отчёт из сохранённых результатов")
		plot      = flag.Bool("plot", false, "Показать, как построить HTML график")
	)
	flag.Parse()

	if *report {
		if err := renderReport(os.Stdout, resultsFile); err != nil {
			log.Fatalf("Не удалось построить отчёт: %v", err)
		}
		return
	}
	if *plot {
		writePlotInstructions(os.Stdout)
		return
	}

	fmt.Println("=== Нагрузка на randomizer ===")
	fmt.Printf("URL: %s\nRate: %d req/s\nDuration: %s\n\n", *baseURL, *rate, *duration)

	fmt.Println("1. Создание тестового колеса...")
	wheelID, err := setupWheel(*baseURL, fmt.Sprintf("load-%d", time.Now().UnixNano()))
	if err != nil {
		log.Fatalf("Ошибка при подготовке окружения: %v", err)
	}
	fmt.Printf("Колесо %s создано\n", wheelID)
	if *setupOnly {
		return
	}

	fmt.Println()
	fmt.Println("2. Запуск нагрузочного тестирования...")
	if err := runLoadTest(os.Stdout, *baseURL, *rate, *duration, wheelID); err != nil {
		log.Fatalf("Ошибка при нагрузочном тестировании: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Готово ===")
	fmt.Println("Повторный отчёт и график:")
	fmt.Println("  go run ./load/cli -report")
	fmt.Println("  go run ./load/cli -plot")
}

// setupWheel создаёт колесо, которое потом крутит нагрузка, и возвращает его ID.
func setupWheel(baseURL, name string) (string, error) {
	entries := make([]map[string]string, 0, 10)
	for i := 1; i <= 10; i++ {
		entries = append(entries, map[string]string{"name": fmt.Sprintf("entry-%d", i)})
	}
	body, err := json.Marshal(map[string]any{"name": name, "entries": entries})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodPost,
		URL:    baseURL + "/wheel/create",
		Header: jsonHeader,
		Body:   body,
	})

	attacker := vegeta.NewAttacker()
	var created *vegeta.Result
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: 1, Per: time.Second}, time.Second, "setup") {
		if res.Code == http.StatusCreated {
			created = res
		}
	}
	if created == nil {
		return "", errors.New("не удалось создать колесо")
	}

	var resp struct {
		Wheel struct {
			ID string `json:"wheel_id"`
		} `json:"wheel"`
	}
	if err := json.Unmarshal(created.Body, &resp); err != nil {
		return "", fmt.Errorf("decode wheel: %w", err)
	}
	if resp.Wheel.ID == "" {
		return "", errors.New("в ответе нет wheel_id")
	}
	return resp.Wheel.ID, nil
}

// runLoadTest крутит смешанную нагрузку и пишет результаты в resultsFile по мере поступления.
func runLoadTest(out io.Writer, baseURL string, rate int, duration time.Duration, wheelID string) error {
	if rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", rate)
	}
	file, err := createResultsFile(resultsFile)
	if err != nil {
		return err
	}
	defer file.Close()

	attacker := vegeta.NewAttacker(
		vegeta.Timeout(10*time.Second),
		vegeta.Workers(uint64(rate)),
	)
	enc := vegeta.NewEncoder(file)
	report := newEndpointReport()

	var encodeErr error
	results := attacker.Attack(newMixedTargeter(baseURL, wheelID), vegeta.Rate{Freq: rate, Per: time.Second}, duration, "randomizer")
	for res := range results {
		report.add(res)
		if encodeErr != nil {
			continue
		}
		if encodeErr = enc.Encode(res); encodeErr != nil {
			// канал нужно дочитать, иначе воркеры атакующего зависнут
			attacker.Stop()
		}
	}
	if encodeErr != nil {
		return fmt.Errorf("записать результат: %w", encodeErr)
	}

	fmt.Fprintf(out, "Результаты сохранены в %s\n\n", resultsFile)
	return report.write(out)
}

// loadTargets набор запросов, которые по кругу отправляет нагрузка.
func loadTargets(baseURL, wheelID string) []vegeta.Target {
	items := []byte(`{"items":["alice","bob","carol","dave","erin","frank"]}`)
	return []vegeta.Target{
		{Method: http.MethodGet, URL: baseURL + "/random/int?min=0&max=100"},
		{Method: http.MethodPost, URL: baseURL + "/random/pick", Header: jsonHeader, Body: items},
		{Method: http.MethodPost, URL: baseURL + "/random/shuffle", Header: jsonHeader, Body: items},
		{Method: http.MethodGet, URL: baseURL + "/random/coin"},
		{Method: http.MethodGet, URL: baseURL + "/random/dice?sides=20&count=3"},
		{Method: http.MethodPost, URL: baseURL + "/random/teams", Header: jsonHeader,
			Body: []byte(`{"items":["alice","bob","carol","dave","erin","frank"],"team_count":3}`)},
		{Method: http.MethodPost, URL: baseURL + "/wheel/spin", Header: jsonHeader,
			Body: []byte(fmt.Sprintf(`{"wheel_id":%q,"remove_winner":false}`, wheelID))},
		{Method: http.MethodGet, URL: baseURL + "/wheel/history?wheel_id=" + wheelID + "&limit=5"},
	}
}

func newMixedTargeter(baseURL, wheelID string) vegeta.Targeter {
	targets := loadTargets(baseURL, wheelID)
	var next atomic.Uint64
	return func(t *vegeta.Target) error {
		if t == nil {
			return vegeta.ErrNilTarget
		}
		*t = targets[(next.Add(1)-1)%uint64(len(targets))]
		return nil
	}
}

func createResultsFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("создать директорию: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("создать файл: %w", err)
	}
	return file, nil
}

// endpointReport копит метрики по всему прогону и по каждому маршруту отдельно.
type endpointReport struct {
	total  vegeta.Metrics
	routes map[string]*vegeta.Metrics
}

func newEndpointReport() *endpointReport {
	return &endpointReport{routes: map[string]*vegeta.Metrics{}}
}

func (r *endpointReport) add(res *vegeta.Result) {
	r.total.Add(res)
	key := routeOf(res)
	m, ok := r.routes[key]
	if !ok {
		m = &vegeta.Metrics{}
		r.routes[key] = m
	}
	m.Add(res)
}

func (r *endpointReport) write(out io.Writer) error {
	r.total.Close()
	if err := vegeta.NewTextReporter(&r.total)(out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	keys := make([]string, 0, len(r.routes))
	for k := range r.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "По маршрутам:")
	for _, k := range keys {
		m := r.routes[k]
		m.Close()
		fmt.Fprintf(out, "  %-24s requests=%-6d success=%6.2f%% p95=%s\n",
			k, m.Requests, m.Success*100, m.Latencies.P95)
	}
	return nil
}

// routeOf возвращает "МЕТОД путь" без query, чтобы история с разными wheel_id не дробилась.
func routeOf(res *vegeta.Result) string {
	u, err := url.Parse(res.URL)
	if err != nil || u.Path == "" {
		return "unknown"
	}
	return strings.TrimSpace(res.Method + " " + u.Path)
}

func renderReport(out io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	dec := vegeta.NewDecoder(file)
	report := newEndpointReport()
	for {
		var res vegeta.Result
		if err := dec.Decode(&res); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("decode result: %w", err)
		}
		report.add(&res)
	}
	return report.write(out)
}

func writePlotInstructions(out io.Writer) {
	fmt.Fprintln(out, "HTML график строит CLI утилита vegeta:")
	fmt.Fprintf(out, "  vegeta plot %s > load/artifacts/plot.html\n", resultsFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Если утилиты нет:")
	fmt.Fprintln(out, "  go install github.com/tsenart/vegeta/v12@latest")
}
