// Package rsarecover recovers RSA private keys from weak public
// parameters using a battery of classical number-theoretic attacks:
// Wiener's continued-fraction attack on small private exponents,
// Brent's variant of Pollard's rho, Pollard's p-1 with escalating
// smoothness bounds, and Fermat's close-factor method.
//
// # Quick Start
//
//	import "github.com/cryptanal/rsarecover/pkg/rsarecover"
//
//	// Create a client with default settings
//	client := rsarecover.NewClient()
//
//	// Recover the key behind a challenge file and decrypt it
//	result, err := client.RecoverKey(ctx, "challenges.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Recovered plaintext: %s\n", result.Plaintext)
//
// # Customization
//
// You can customize the factorization schedule:
//
//	strategy := rsarecover.NewStagedFactorStrategy().
//	    WithPMinus1Config(rsarecover.PMinus1Config{
//	        Bounds: []int64{50000, 500000},
//	    }).
//	    WithRhoConfig(rsarecover.RhoConfig{
//	        Attempts:  20,
//	        BatchSize: 1 << 12,
//	        Seed:      42,
//	    })
//
//	client := rsarecover.NewClient().WithStrategy(strategy)
//
// # Custom Strategies
//
// Implement the FactorStrategy interface to plug in your own
// factorization method:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Factor(ctx context.Context, n *big.Int) *rsarecover.Factorization {
//	    // Your factorization logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyStrategy"
//	}
//
//	client := rsarecover.NewClient().WithStrategy(&MyStrategy{})
package rsarecover
