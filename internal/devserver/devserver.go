// Package devserver is a tiny wasm dev loop for examples/: build, serve,
// and reload the browser on source change. Adapted from the teacher's
// internal/devserver, generalized to inject a live-reload client into
// whatever index.html an example ships (or synthesize one when an
// example has none), and to drive that reload
// off github.com/fsnotify/fsnotify instead of a manual rebuild trigger —
// grounded on SPEC_FULL.md's B.4 framing of fsnotify as the harness used
// to observe spec.md §8's end-to-end scenarios in a live page.
package devserver

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// wasmExecJSPath locates the wasm_exec.js shipped with the active Go
// toolchain under GOROOT. Pulsar does not vendor a copy: the file's
// contents are toolchain-specific and the dev server only needs to serve
// whatever version built the binary it's hosting.
func wasmExecJSPath() string {
	return filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js")
}

// exampleDir resolves the source/output directory for example, trying the
// common working directories a `go run`/`go test` invocation lands in.
func exampleDir(example string) string {
	if _, err := os.Stat("main.go"); err == nil {
		return "."
	}
	if _, err := os.Stat(filepath.Join("examples", example)); err == nil {
		return filepath.Join("examples", example)
	}
	return filepath.Join("..", "..", "examples", example)
}

// BuildWASM compiles the Go code to WebAssembly for the given example.
func BuildWASM(example string) error {
	log.Printf("==> Building WASM binary for '%s' example...\n", example)

	dir := exampleDir(example)
	outPath := filepath.Join(dir, "main.wasm")
	srcPath := filepath.Join(dir, "main.go")

	cmd := exec.Command("go", "build", "-o", outPath, srcPath)
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		scanner := bufio.NewScanner(strings.NewReader(string(out)))
		for scanner.Scan() {
			log.Println(scanner.Text())
		}
	}
	return err
}

// Server represents a development server instance.
type Server struct {
	server   *http.Server
	example  string
	addr     string
	listener net.Listener
	dir      string
	watcher  *fsnotify.Watcher

	clientsMu sync.Mutex
	clients   map[chan string]struct{}
}

// NewServer creates a new development server for the given example. If
// addr is empty or "localhost:0", it uses a random available port.
func NewServer(example, addr string) *Server {
	if addr == "" {
		addr = "localhost:0"
	}
	return &Server{
		example: example,
		addr:    addr,
		clients: make(map[chan string]struct{}),
	}
}

// Start builds the wasm binary, serves the example directory plus
// wasm_exec.js and a live-reload endpoint, and begins watching the
// example's source for changes.
func (s *Server) Start() error {
	if err := BuildWASM(s.example); err != nil {
		return fmt.Errorf("failed to build WASM: %w", err)
	}
	s.dir = exampleDir(s.example)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}
	s.watcher = watcher
	go s.watchLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndexOrStatic)
	mux.HandleFunc("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		http.ServeFile(w, r, wasmExecJSPath())
	})
	mux.HandleFunc("/__livereload", s.handleLiveReload)

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener
	s.addr = listener.Addr().String()
	s.server = &http.Server{Handler: mux}

	go func() {
		log.Printf("==> Serving http://%s (example: %s)\n", s.addr, s.example)
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
		}
	}()

	time.Sleep(100 * time.Millisecond)
	return nil
}

// Stop shuts the server and its file watcher down.
func (s *Server) Stop() error {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.server == nil {
		return nil
	}
	err := s.server.Close()
	if s.listener != nil {
		s.listener.Close()
	}
	return err
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s", s.addr)
}

// watchLoop rebuilds the wasm binary on every source change and notifies
// connected browsers to reload. Rebuild errors are logged, not fatal —
// an editor mid-save produces transient syntax errors the next save
// fixes.
func (s *Server) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}
			if err := BuildWASM(s.example); err != nil {
				log.Printf("rebuild failed: %v", err)
				continue
			}
			s.broadcast("reload")
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (s *Server) broadcast(msg string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

// handleLiveReload is a Server-Sent-Events endpoint the injected browser
// script subscribes to; each message triggers a page reload.
func (s *Server) handleLiveReload(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan string, 1)
	s.clientsMu.Lock()
	s.clients[ch] = struct{}{}
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, ch)
		s.clientsMu.Unlock()
	}()

	for {
		select {
		case msg := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

// liveReloadScript connects to /__livereload via EventSource and reloads
// the page on the first message it receives.
const liveReloadScript = `<script>
new EventSource('/__livereload').onmessage = function() { location.reload(); };
</script>`

// handleIndexOrStatic serves "/" and "/index.html" with the example's own
// index.html (live-reload script injected) if one exists, or a generated
// loader page otherwise; every other path falls through to a plain static
// file server rooted at the example directory.
func (s *Server) handleIndexOrStatic(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.FileServer(http.Dir(s.dir)).ServeHTTP(w, r)
		return
	}

	body, err := os.ReadFile(filepath.Join(s.dir, "index.html"))
	var page string
	if err == nil {
		if strings.Contains(string(body), "</body>") {
			page = strings.Replace(string(body), "</body>", liveReloadScript+"</body>", 1)
		} else {
			page = string(body) + liveReloadScript
		}
	} else {
		page = generatedIndexHTML()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// generatedIndexHTML is the loader page used when an example ships no
// index.html of its own: a single #app
// mount point plus the usual wasm_exec.js bootstrap.
func generatedIndexHTML() string {
	return `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Pulsar example</title></head>
<body>
<div id="app"></div>
<script src="/wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject).then((result) => {
	go.run(result.instance);
});
</script>
` + liveReloadScript + `
</body>
</html>`
}
