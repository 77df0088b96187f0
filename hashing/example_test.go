package hashing_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

// Example_quickStart shows the shortcut functions with the default
// configuration.
func Example_quickStart() {
	hash, err := hashing.GeneratePasswordHash("my-secret-password", hashing.WithRounds(bcrypt.MinCost))
	if err != nil {
		log.Fatal(err)
	}

	ok, err := hashing.CheckPasswordHash(hash, "my-secret-password")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)

	ok, _ = hashing.CheckPasswordHash(hash, "wrong")
	fmt.Println(ok)
	// Output:
	// true
	// false
}

// Example_hasher configures a Hasher explicitly.
func Example_hasher() {
	h := hashing.New(hashing.Config{Cost: 5, Prefix: "2a"})

	hash, err := h.Generate("hunter2")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash[:7])

	info, _ := h.Info(hash)
	fmt.Println(info.Prefix, info.Cost)
	// Output:
	// $2a$05$
	// 2a 5
}

// Example_fromSource reads the configuration from host settings.
func Example_fromSource() {
	cfg := hashing.FromSource(hashing.MapSource{
		hashing.KeyLogRounds:  10,
		hashing.KeyHashPrefix: "2y",
	})
	fmt.Println(cfg.Cost, cfg.Prefix, cfg.LongPasswords)
	// Output: 10 2y false
}

// Example_needsRehash upgrades a stored hash after the cost was raised.
func Example_needsRehash() {
	old := hashing.New(hashing.Config{Cost: 4, Prefix: "2b"})
	stored, _ := old.Generate("s3cret")

	current := hashing.New(hashing.Config{Cost: 5, Prefix: "2b"})
	if ok, _ := current.Verify(stored, "s3cret"); ok {
		if rehash, _ := current.NeedsRehash(stored); rehash {
			stored, _ = current.Generate("s3cret")
		}
	}
	fmt.Println(strings.HasPrefix(stored, "$2b$05$"))
	// Output: true
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// Example_deterministicSalt plugs in a fixed random source, which is only
// ever appropriate in tests.
func Example_deterministicSalt() {
	h := hashing.New(hashing.Config{Cost: 4, Prefix: "2b"},
		hashing.WithPrimitive(bcrypt.NewWithRand(zeroReader{})))

	hash, _ := h.Generate("secret")
	fmt.Println(hash[:29])
	// Output: $2b$04$......................
}
