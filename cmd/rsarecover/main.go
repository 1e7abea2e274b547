package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/cryptanal/rsarecover/pkg/rsarecover"
)

func main() {
	var (
		challengesFile = flag.String("challenges", "", "Path to challenge file (JSON or CSV)")
		format         = flag.String("format", "json", "Challenge file format (json or csv)")
		eFlag          = flag.String("e", "", "Public exponent (decimal or 0x-hex)")
		nFlag          = flag.String("n", "", "Modulus (decimal or 0x-hex)")
		cFlag          = flag.String("c", "", "Ciphertext (decimal or 0x-hex)")
		expectPrefix   = flag.String("expect-prefix", "", "Required plaintext prefix (e.g. flag{)")
		expectSuffix   = flag.String("expect-suffix", "", "Required plaintext suffix (e.g. })")
		pm1Bounds      = flag.String("pm1-bounds", "100000,300000,700000,1200000", "Ascending p-1 smoothness bounds (comma-separated)")
		rhoAttempts    = flag.Int("rho-attempts", 10, "Randomized rho restarts before giving up")
		rhoSeed        = flag.Int64("rho-seed", 0, "Seed for rho's random parameters (0 = time-seeded)")
		fermatSteps    = flag.Int("fermat-steps", 1000000, "Fermat iteration cap")
	)
	flag.Parse()

	bounds, err := parseBounds(*pm1Bounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing pm1-bounds: %v\n", err)
		os.Exit(1)
	}

	strategy := rsarecover.NewStagedFactorStrategy().
		WithPMinus1Config(rsarecover.PMinus1Config{Bounds: bounds}).
		WithRhoConfig(rsarecover.RhoConfig{
			Attempts:  *rhoAttempts,
			BatchSize: 1 << 12,
			Seed:      *rhoSeed,
		}).
		WithFermatConfig(rsarecover.FermatConfig{MaxSteps: *fermatSteps})

	client := rsarecover.NewClient().WithStrategy(strategy)

	var challenges []*rsarecover.Challenge
	switch {
	case *challengesFile != "":
		var parser rsarecover.ChallengeParser
		if *format == "csv" {
			parser = &rsarecover.CSVParser{}
		} else {
			parser = &rsarecover.JSONParser{}
		}
		challenges, err = parser.ParseChallenges(*challengesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *eFlag != "" && *nFlag != "" && *cFlag != "":
		ch, err := challengeFromFlags(*eFlag, *nFlag, *cFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		challenges = []*rsarecover.Challenge{ch}
	default:
		fmt.Fprintf(os.Stderr, "Error: must specify --challenges or all of --e/--n/--c\n")
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	for i, ch := range challenges {
		fmt.Printf("Trying to recover challenge %d (n: %d bits, e: %d bits)...\n",
			i, ch.Key.N.BitLen(), ch.Key.E.BitLen())

		result, err := client.Recover(ctx, ch.Key.E, ch.Key.N, ch.C)
		if err != nil {
			fmt.Printf("    %v\n", err)
			continue
		}

		if !matchesShape(result.Plaintext, *expectPrefix, *expectSuffix) {
			fmt.Printf("    Recovered a plaintext, but it does not match the expected shape\n")
			fmt.Printf("    m = %s\n", result.M.String())
			continue
		}

		fmt.Printf("\n[+] Successfully recovered private key!\n")
		fmt.Printf("    Method: %s\n", result.Method)
		fmt.Printf("    d: %s\n", result.D.String())
		if result.Factors != nil {
			fmt.Printf("    p: %s\n", result.Factors.P.String())
			fmt.Printf("    q: %s\n", result.Factors.Q.String())
		}
		fmt.Printf("    Plaintext: %q\n", result.Plaintext)
		return
	}

	fmt.Println("Failed to recover plaintext with current methods.")
	os.Exit(1)
}

// matchesShape applies the driver's plaintext acceptance policy. The
// library guarantees only mathematically consistent decryption; whether
// the bytes look like the expected flag is decided here.
func matchesShape(plaintext []byte, prefix, suffix string) bool {
	if prefix != "" && !bytes.HasPrefix(plaintext, []byte(prefix)) {
		return false
	}
	if suffix != "" && !bytes.HasSuffix(plaintext, []byte(suffix)) {
		return false
	}
	return true
}

func challengeFromFlags(e, n, c string) (*rsarecover.Challenge, error) {
	ch := &rsarecover.Challenge{}
	var err error
	if ch.Key.E, err = parseInt(e); err != nil {
		return nil, fmt.Errorf("invalid e: %w", err)
	}
	if ch.Key.N, err = parseInt(n); err != nil {
		return nil, fmt.Errorf("invalid n: %w", err)
	}
	if ch.C, err = parseInt(c); err != nil {
		return nil, fmt.Errorf("invalid c: %w", err)
	}
	return ch, nil
}

func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("not a valid integer: %s", s)
	}
	return z, nil
}

func parseBounds(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	bounds := make([]int64, 0, len(parts))
	for _, part := range parts {
		b, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, b)
	}
	return bounds, nil
}
