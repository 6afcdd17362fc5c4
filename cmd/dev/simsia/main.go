package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

// Simulates the upstream admissions API for local development:
//
//	go run ./cmd/dev/simsia -addr :9090 -scenario feedback
//	ADMISSIONS_BASE_URL=http://localhost:9090 go run ./cmd/api
//
// Scenarios: draft (no profile), waiting, feedback, approved, rejected.
func main() {
	var (
		addr     = flag.String("addr", ":9090", "listen address")
		scenario = flag.String("scenario", "waiting", "draft | waiting | feedback | approved | rejected")
	)
	flag.Parse()

	s, ok := scenarios[*scenario]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *scenario)
		os.Exit(2)
	}

	http.HandleFunc("/applicants/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/profile"):
			if s.profile == nil {
				http.NotFound(w, r)
				return
			}
			writeData(w, s.profile)
		case strings.HasSuffix(r.URL.Path, "/documents"):
			writeData(w, s.documents)
		case strings.HasSuffix(r.URL.Path, "/guardians"):
			writeData(w, s.guardians)
		case strings.HasSuffix(r.URL.Path, "/achievements"):
			writeData(w, s.achievements)
		case strings.HasSuffix(r.URL.Path, "/payment"):
			if s.payment == nil {
				http.NotFound(w, r)
				return
			}
			writeData(w, s.payment)
		default:
			http.NotFound(w, r)
		}
	})

	log.Printf("simsia (%s) listening on %s", *scenario, *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

type canned struct {
	profile      map[string]any
	documents    []map[string]any
	guardians    []map[string]any
	achievements []map[string]any
	payment      map[string]any
}

func profile(status string) map[string]any {
	return map[string]any{
		"id":                  "app-1",
		"full_name":           "Siti Rahma",
		"registration_status": status,
		"registration_number": "2026-0001",
		"id_program":          "prog-ti",
	}
}

func doc(id, typ, status, reason string) map[string]any {
	d := map[string]any{
		"id":                  id,
		"id_document_type":    typ,
		"verification_status": status,
		"file_path":           "/files/" + id + ".pdf",
	}
	if reason != "" {
		d["rejection_reason"] = reason
	}
	return d
}

var guardians = []map[string]any{
	{"id": "g-1", "full_name": "Budi Santoso", "relation": "ayah"},
}

var scenarios = map[string]canned{
	"draft": {},
	"waiting": {
		profile: profile("submitted"),
		documents: []map[string]any{
			doc("d-1", "ktp", "pending", ""),
			doc("d-2", "akta_kelahiran", "pending", ""),
		},
		guardians: guardians,
	},
	"feedback": {
		profile: profile("submitted"),
		documents: []map[string]any{
			doc("d-1", "ktp", "approved", ""),
			doc("d-2", "akta_kelahiran", "rejected", "foto tidak terbaca"),
			doc("d-3", "kartu_keluarga", "approved", ""),
			doc("d-4", "transkrip", "pending", ""),
		},
		guardians: guardians,
		payment: map[string]any{
			"id": "p-1", "status": "waiting_verification", "amount": "250000",
			"payment_proof_file": "/files/bukti.jpg",
		},
	},
	"approved": {
		profile: profile("approved"),
		documents: []map[string]any{
			doc("d-1", "ktp", "approved", ""),
			doc("d-2", "akta_kelahiran", "approved", ""),
			doc("d-3", "kartu_keluarga", "approved", ""),
			doc("d-4", "transkrip", "approved", ""),
			doc("d-5", "ijazah", "approved", ""),
		},
		guardians: guardians,
		payment: map[string]any{
			"id": "p-1", "status": "verified", "amount": "250000",
			"payment_proof_file": "/files/bukti.jpg",
		},
	},
	"rejected": {
		profile:   profile("rejected"),
		documents: []map[string]any{doc("d-1", "ktp", "rejected", "data tidak sesuai")},
		guardians: guardians,
	},
}
