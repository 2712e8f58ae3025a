package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 64000 // Total number of unique weblog lines to generate
)

var (
	// One minute inside each quarter-hour window of hour 16 UTC. The minutes
	// sit away from the :15/:30/:45 edges so every line lands in exactly one
	// window regardless of its second.
	quarterMinutes = []string{"16:03", "16:18", "16:33", "16:48"}
	quarterLabels  = []string{"0015", "1630", "3145", "4660"}

	clientIPs    = []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
	requestPaths = []string{"/", "/about", "/careers", "/contact"}
	userAgents   = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type entry struct {
	bucket int
	round  int
}

type batchToSend struct {
	batchIndex int
	body       []byte
	isOriginal bool
}

// sessionReport mirrors the fields of GET /reports/{batchID} that this
// scenario verifies.
type sessionReport struct {
	CustomerID   string `json:"customerId"`
	BatchID      string `json:"batchId"`
	TotalEvents  int64  `json:"totalEvents"`
	SkippedLines int64  `json:"skippedLines"`
	SessionHits  []struct {
		IP        string `json:"ip"`
		SessionID string `json:"sessionId"`
		TotalHits int64  `json:"totalHits"`
	} `json:"sessionHits"`
	AvgSessionTimes []struct {
		IP            string  `json:"ip"`
		TotalSessions int64   `json:"totalSessions"`
		AvgSessionMin float64 `json:"avgSessionTimeInMin"`
	} `json:"avgSessionTimes"`
	UniqueURLCounts []struct {
		SessionID     string `json:"sessionId"`
		NumUniqueHits int64  `json:"numUniqueHits"`
	} `json:"uniqueUrlCounts"`
	Engagements []struct {
		User      string `json:"user"`
		SessionID string `json:"sessionId"`
	} `json:"engagements"`
	RequestsByUserAgent map[string]int64 `json:"requestsByUserAgent"`
}

// main runs the e2e scenario: 001_basic_session_report
//
// This scenario tests the end-to-end flow of weblog batch ingestion,
// quarter-hour sessionization and session report generation. It sends 64,000
// ELB access log lines across multiple batches to the weblog analytics API,
// with configurable duplicate batches to test idempotency handling, then
// fetches and verifies the session report of every batch.
//
// What it tests:
//   - Weblog batch ingestion via POST /weblogs endpoint
//   - Idempotency key handling for duplicate batch detection
//   - Unparseable line counting (every batch carries one junk line)
//   - Weblog batch event production and consumption
//   - Session report build and storage
//   - Report retrieval via GET /reports/{batchID}
//
// Expected results:
//   - All original batches return 202 Accepted
//   - Duplicate batches return 409 Conflict status (idempotency working)
//   - Every batch eventually serves a session report where:
//     totalEvents equals the batch line count, skippedLines equals 1,
//     session hit totals and user agent totals both sum to totalEvents,
//     every table is sorted by its metric descending, and every session ID
//     carries the scenario date, hour 16 and a valid quarter label
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the weblog analytics API server
	dateUTC := "2025-12-28"               // Date used for generating weblog timestamps (UTC)
	itemsPerBatch := 20                   // Number of weblog lines per batch. Original batches = totalEntries / itemsPerBatch
	parallel := 2                         // Number of concurrent requests to send
	totalDuplicates := 2000               // Total number of duplicate batches to send across all batches. Total batches sent = original batches + duplicate batches
	customerID := "cus-axon"              // Customer ID to use in requests
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario

	// Validate itemsPerBatch divides evenly
	if totalEntries%itemsPerBatch != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: TOTAL_ENTRIES (%d) must be divisible by ITEMS_PER_BATCH (%d)\n", totalEntries, itemsPerBatch)
		os.Exit(1)
	}

	batchCount := totalEntries / itemsPerBatch

	// Get project root directory by looking for go.mod file
	// Start from current working directory and walk up until we find go.mod
	projectRoot, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}

	// Walk up the directory tree to find go.mod
	for i := 0; i < 10; i++ {
		goModPath := filepath.Join(projectRoot, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			// Reached filesystem root without finding go.mod
			fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Please run from project root or set FILE_STORAGE_DIR to absolute path\n")
			os.Exit(1)
		}
		projectRoot = parent
	}

	// Resolve file storage directory relative to project root
	storagePath := filepath.Join(projectRoot, fileStorageDir)
	storagePath, err = filepath.Abs(storagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve file storage path: %v\n", err)
		os.Exit(1)
	}

	// Clean up file storage if requested
	if wantCleanFileStorage {
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		} else {
			fmt.Printf("File storage directory cleaned\n")
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_basic_session_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Printf("FILE_STORAGE_DIR: %s\n", fileStorageDir)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Printf("WANT_CLEAN_FILE_STORAGE: %v\n", wantCleanFileStorage)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	// Generate all entries
	fmt.Printf("Generating all %d entries...\n", totalEntries)
	entries := generateAllEntries()
	fmt.Printf("Generated %d entries\n", len(entries))
	fmt.Println()

	// Generate all batches (original + duplicates) and sort by batchIndex
	fmt.Printf("Generating all batches (original + duplicates)...\n")
	batchesToSend := make([]batchToSend, 0, batchCount+totalDuplicates)

	// First, generate all original batches
	for batchIndex := 1; batchIndex <= batchCount; batchIndex++ {
		body := generateBatchBody(batchIndex, itemsPerBatch, entries, batchCount, dateUTC)
		batchesToSend = append(batchesToSend, batchToSend{
			batchIndex: batchIndex,
			body:       body,
			isOriginal: true,
		})
	}

	// Then, add duplicate batches until we reach totalDuplicates
	// Distribute duplicates evenly across batches using round-robin
	duplicatesAdded := 0
	batchIndex := 1
	for duplicatesAdded < totalDuplicates {
		// Reuse the body from the original batch
		body := batchesToSend[batchIndex-1].body
		batchesToSend = append(batchesToSend, batchToSend{
			batchIndex: batchIndex,
			body:       body,
			isOriginal: false,
		})
		duplicatesAdded++
		batchIndex++
		if batchIndex > batchCount {
			batchIndex = 1 // Round-robin back to first batch
		}
	}

	// Sort by batchIndex to ensure proper ordering
	sort.Slice(batchesToSend, func(i, j int) bool {
		return batchesToSend[i].batchIndex < batchesToSend[j].batchIndex
	})

	fmt.Printf("Generated %d batches to send (%d original + %d duplicates)\n",
		len(batchesToSend), batchCount, len(batchesToSend)-batchCount)
	fmt.Println()

	// Create worker pool for parallel batch sending
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var totalBatchesSent int64   // original + duplicate batches
	var duplicateBatchSent int64 // duplicate batches only
	var conflictedRequest int64  // 409 status code
	var acceptedRequest int64    // 202 status code
	var invalidRequest int64     // 400 status code
	var internalRequest int64    // 500 status code

	// Send all batches
	for _, batch := range batchesToSend {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(b batchToSend) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendBatch(baseURL, customerID, b)
			if err != nil {
				mu.Lock()
				if b.isOriginal {
					errors = append(errors, fmt.Errorf("batch %d: %w", b.batchIndex, err))
				} else {
					errors = append(errors, fmt.Errorf("batch %d (duplicate): %w", b.batchIndex, err))
				}
				mu.Unlock()
				if b.isOriginal {
					fmt.Fprintf(os.Stderr, "ERROR: Batch %d failed: %v\n", b.batchIndex, err)
				} else {
					fmt.Fprintf(os.Stderr, "ERROR: Batch %d (duplicate) failed: %v\n", b.batchIndex, err)
				}
			} else {
				// Track statistics
				atomic.AddInt64(&totalBatchesSent, 1)
				if !b.isOriginal {
					atomic.AddInt64(&duplicateBatchSent, 1)
				}

				// Track status codes
				switch statusCode {
				case http.StatusAccepted:
					atomic.AddInt64(&acceptedRequest, 1)
				case http.StatusBadRequest:
					atomic.AddInt64(&invalidRequest, 1)
				case http.StatusConflict:
					atomic.AddInt64(&conflictedRequest, 1)
				case http.StatusInternalServerError:
					atomic.AddInt64(&internalRequest, 1)
				}

				if b.isOriginal {
					fmt.Printf("Batch %d completed (status %d)\n", b.batchIndex, statusCode)
				} else {
					fmt.Printf("Batch %d (duplicate) completed (status %d)\n", b.batchIndex, statusCode)
				}
			}
		}(batch)
	}

	// Wait for all batches to complete
	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d batch sends failed\n", len(errors))
		os.Exit(1)
	}

	// Print statistics
	totalBatches := atomic.LoadInt64(&totalBatchesSent)
	duplicateBatches := atomic.LoadInt64(&duplicateBatchSent)
	originalBatches := totalBatches - duplicateBatches
	conflicted := atomic.LoadInt64(&conflictedRequest)
	accepted := atomic.LoadInt64(&acceptedRequest)
	invalid := atomic.LoadInt64(&invalidRequest)
	internal := atomic.LoadInt64(&internalRequest)

	fmt.Println("All batches completed successfully")
	fmt.Println("=== Ingest Statistics ===")
	fmt.Printf("Total batches sent: %d\n", totalBatches)
	fmt.Printf("Duplicate batch sent: %d\n", duplicateBatches)
	fmt.Printf("Original batch sent: %d\n", originalBatches)
	fmt.Printf("Conflicted request: %d\n", conflicted)
	fmt.Printf("Accepted request: %d\n", accepted)
	fmt.Printf("Invalid request: %d\n", invalid)
	fmt.Printf("Internal request: %d\n", internal)
	fmt.Printf("Total unique entries sent: %d\n", totalEntries)
	fmt.Println()

	if accepted != int64(batchCount) || conflicted != int64(totalDuplicates) {
		fmt.Fprintf(os.Stderr, "ERROR: expected %d accepted and %d conflicted requests, got %d and %d\n",
			batchCount, totalDuplicates, accepted, conflicted)
		os.Exit(1)
	}

	// Fetch and verify the session report of every original batch. Reports
	// build asynchronously, so each fetch retries until the report shows up.
	fmt.Println("Verifying session reports...")
	var verified int64
	var problems []string

	for _, batch := range batchesToSend {
		if !batch.isOriginal {
			continue
		}

		wg.Add(1)
		workerChan <- struct{}{}

		go func(b batchToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			batchID := idempotencyKeyFor(b.batchIndex)
			report, err := fetchReportWithRetry(baseURL, customerID, batchID)
			if err != nil {
				mu.Lock()
				problems = append(problems, fmt.Sprintf("batch %s: %v", batchID, err))
				mu.Unlock()
				return
			}

			if errs := verifyReport(report, customerID, batchID, int64(itemsPerBatch), dateUTC); len(errs) > 0 {
				mu.Lock()
				problems = append(problems, errs...)
				mu.Unlock()
				return
			}

			atomic.AddInt64(&verified, 1)
		}(batch)
	}

	wg.Wait()

	fmt.Println("=== Report Statistics ===")
	fmt.Printf("Reports verified: %d\n", atomic.LoadInt64(&verified))
	fmt.Printf("Reports failed: %d\n", len(problems))

	if len(problems) > 0 {
		sort.Strings(problems)
		limit := len(problems)
		if limit > 20 {
			limit = 20
		}
		for _, problem := range problems[:limit] {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", problem)
		}
		if len(problems) > limit {
			fmt.Fprintf(os.Stderr, "... and %d more\n", len(problems)-limit)
		}
		os.Exit(1)
	}

	fmt.Println("Scenario completed successfully")
}

func generateAllEntries() []entry {
	entries := make([]entry, 0, totalEntries)
	bucket := 0
	round := 0

	for count := 0; count < totalEntries; count++ {
		entries = append(entries, entry{bucket: bucket, round: round})

		bucket++
		if bucket >= 64 {
			bucket = 0
			round++
		}
	}

	return entries
}

// generateLine renders one ELB access log line. The 64 buckets cover every
// combination of 4 quarter-hour windows, 4 client IPs and 4 user agents.
func generateLine(e entry, dateUTC string) string {
	quarterIndex := e.bucket / 16
	ipIndex := (e.bucket / 4) % 4
	uaIndex := e.bucket % 4

	minute := quarterMinutes[quarterIndex]
	ip := clientIPs[ipIndex]
	ua := userAgents[uaIndex]
	path := requestPaths[(e.bucket*7+e.round)%4]

	seconds := e.round % 60
	micros := (e.bucket*5417 + e.round*13) % 1000000
	timestamp := fmt.Sprintf("%sT%s:%02d.%06dZ", dateUTC, minute, seconds, micros)
	clientPort := 40000 + (e.round % 20000)

	return fmt.Sprintf(`%s weblog-lb %s:%d 10.0.6.158:80 0.000022 0.026109 0.000020 200 200 0 699 "GET http://shop.example.com%s HTTP/1.1" "%s" - -`,
		timestamp, ip, clientPort, path, ua)
}

// generateBatchBody builds the plain-text payload of one batch: itemsPerBatch
// parseable lines picked with a stride pattern, plus one junk line the parser
// must skip.
func generateBatchBody(batchIndex, batchSize int, entries []entry, batchCount int, dateUTC string) []byte {
	startIndex := (batchIndex - 1) * batchSize
	stride := batchCount + 1

	lines := make([]string, 0, batchSize+1)
	for i := 0; i < batchSize; i++ {
		// Use stride pattern to mix entries across batches
		entryIndex := (startIndex + i*stride) % totalEntries
		lines = append(lines, generateLine(entries[entryIndex], dateUTC))
	}
	lines = append(lines, "### generated noise line, the parser must skip it")

	return []byte(strings.Join(lines, "\n") + "\n")
}

func idempotencyKeyFor(batchIndex int) string {
	return fmt.Sprintf("batch-%06d", batchIndex)
}

func sendBatch(baseURL, customerID string, batch batchToSend) (int, error) {
	// Same key for all duplicates of this batch
	req, err := http.NewRequest("POST", baseURL+"/weblogs", bytes.NewReader(batch.body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("x-customer-id", customerID)
	req.Header.Set("idempotency-key", idempotencyKeyFor(batch.batchIndex))

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	// Return status code and error handling:
	// - 409 Conflict: return status code with nil error (expected for duplicates)
	// - Other 4xx/5xx: return status code with error
	// - 2xx/3xx: return status code with nil error (success)
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

// fetchReportWithRetry polls GET /reports/{batchID} until the asynchronously
// built report is available.
func fetchReportWithRetry(baseURL, customerID, batchID string) (*sessionReport, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var lastStatus int
	for attempt := 0; attempt < 60; attempt++ {
		if attempt > 0 {
			time.Sleep(500 * time.Millisecond)
		}

		req, err := http.NewRequest("GET", baseURL+"/reports/"+batchID, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("x-customer-id", customerID)

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode == http.StatusNotFound {
			// Report not built yet
			resp.Body.Close()
			lastStatus = resp.StatusCode
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		var report sessionReport
		err = json.NewDecoder(resp.Body).Decode(&report)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		return &report, nil
	}

	return nil, fmt.Errorf("report not available after retries (last status %d)", lastStatus)
}

// verifyReport checks the invariants every session report of this scenario
// must hold. It returns one message per violation.
func verifyReport(report *sessionReport, customerID, batchID string, wantEvents int64, dateUTC string) []string {
	var errs []string
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("batch %s: ", batchID)+fmt.Sprintf(format, args...))
	}

	if report.CustomerID != customerID {
		fail("customer ID %q, want %q", report.CustomerID, customerID)
	}
	if report.BatchID != batchID {
		fail("batch ID %q, want %q", report.BatchID, batchID)
	}
	if report.TotalEvents != wantEvents {
		fail("total events %d, want %d", report.TotalEvents, wantEvents)
	}
	if report.SkippedLines != 1 {
		fail("skipped lines %d, want 1", report.SkippedLines)
	}

	var hitSum int64
	for i, row := range report.SessionHits {
		hitSum += row.TotalHits
		if i > 0 && row.TotalHits > report.SessionHits[i-1].TotalHits {
			fail("session hits not sorted descending at row %d", i)
		}
		if !validSessionID(row.SessionID, row.IP, dateUTC) {
			fail("malformed session ID %q for IP %s", row.SessionID, row.IP)
		}
	}
	if hitSum != report.TotalEvents {
		fail("session hit totals sum to %d, want %d", hitSum, report.TotalEvents)
	}

	for i, row := range report.UniqueURLCounts {
		if i > 0 && row.NumUniqueHits > report.UniqueURLCounts[i-1].NumUniqueHits {
			fail("unique URL counts not sorted descending at row %d", i)
		}
	}
	if len(report.UniqueURLCounts) != len(report.SessionHits) {
		fail("unique URL table has %d rows, session hits has %d", len(report.UniqueURLCounts), len(report.SessionHits))
	}

	for _, row := range report.AvgSessionTimes {
		if row.TotalSessions < 1 {
			fail("IP %s reports %d sessions", row.IP, row.TotalSessions)
		}
		if row.AvgSessionMin < 0 {
			fail("IP %s reports negative session time", row.IP)
		}
	}

	for _, row := range report.Engagements {
		if !strings.Contains(row.User, "_") {
			fail("engagement user %q is missing the agent hash suffix", row.User)
		}
	}

	var uaSum int64
	for _, count := range report.RequestsByUserAgent {
		uaSum += count
	}
	if uaSum != report.TotalEvents {
		fail("user agent totals sum to %d, want %d", uaSum, report.TotalEvents)
	}

	return errs
}

// validSessionID checks the YYYYMMDD-HH-QQQQ-ip shape: scenario date, hour
// 16, a known quarter label and the dashed client IP.
func validSessionID(sessionID, ip, dateUTC string) bool {
	datePart := strings.ReplaceAll(dateUTC, "-", "")
	dashedIP := strings.ReplaceAll(ip, ".", "-")

	if !strings.HasPrefix(sessionID, datePart+"-16-") {
		return false
	}
	if !strings.HasSuffix(sessionID, "-"+dashedIP) {
		return false
	}

	rest := strings.TrimPrefix(sessionID, datePart+"-16-")
	for _, label := range quarterLabels {
		if strings.HasPrefix(rest, label+"-") {
			return true
		}
	}
	return false
}
