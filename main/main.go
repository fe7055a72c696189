package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/hexaurl/hexaurl-go"
	"github.com/hexaurl/hexaurl-go/config"
)

// Profiling harness: runs the encode/validate/decode loop under full
// allocation tracking, writes a heap profile and keeps the pprof
// endpoint up for interactive inspection.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	cfg := config.Default(16)
	inputs := []string{
		"some-user",
		"another-longer-name",
		"id42",
		"MiXeD-CaSe-Entry",
	}
	for i := 0; i < 10000; i++ {
		for _, in := range inputs {
			packed, err := hexaurl.Encode(in, cfg)
			if err != nil {
				log.Fatal(err)
			}
			if _, err := hexaurl.Decode(packed, cfg); err != nil {
				log.Fatal(err)
			}
			h := hexaurl.NewUnchecked(in)
			_ = h.String()
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
