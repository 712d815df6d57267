package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	ntru "github.com/SrihariX911/Secure-Drone-Communication/ntru"
	"github.com/SrihariX911/Secure-Drone-Communication/ntru/keys"
	"github.com/SrihariX911/Secure-Drone-Communication/ntru/message"

	"github.com/tuneinsight/lattigo/v4/utils"
)

func usage() {
	fmt.Println(`usage: dronemsg <gen|roundtrip> [options]

Subcommands:
  gen        Generate an NTRU keypair and print it as JSON.
             Flags:
               -N <int>     ring dimension            (default: 107)
               -p <int>     small prime modulus       (default: 3)
               -q <int>     large modulus             (default: 128)
               -d <int>     ternary weight            (default: 6)
               -seed <str>  deterministic seed (omit for system randomness)

  roundtrip  Generate a keypair, encrypt a message and decrypt it again,
             printing public key, ciphertext and recovered plaintext.
             Flags:
               -N -p -q -d -seed   as above (defaults: 16/29/512/2)
               -text <string>      message over the A-Z alphabet
               -nums <list>        comma-separated coefficients, e.g. 1,0,1`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "roundtrip":
		runRoundtrip(os.Args[2:])
	default:
		usage()
	}
}

func newPRNG(seed string) (utils.PRNG, error) {
	if seed == "" {
		return ntru.NewSystemPRNG()
	}
	return ntru.NewSeededPRNG("dronemsg", []byte(seed))
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	n := fs.Int("N", 107, "ring dimension")
	p := fs.Int64("p", 3, "small prime modulus")
	q := fs.Int64("q", 128, "large modulus")
	d := fs.Int("d", 6, "ternary weight")
	seed := fs.String("seed", "", "deterministic seed")
	fs.Parse(args)

	par, err := ntru.NewParams(*n, *p, *q, *d)
	if err != nil {
		log.Fatalf("parameters: %v", err)
	}
	prng, err := newPRNG(*seed)
	if err != nil {
		log.Fatalf("prng: %v", err)
	}
	priv, pub, err := ntru.GenerateKeyPair(par, prng, ntru.KeygenOpts{})
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	printJSON("public key", keys.FromPublic(pub))
	printJSON("private key", keys.FromPrivate(priv))
}

func runRoundtrip(args []string) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	n := fs.Int("N", 16, "ring dimension")
	p := fs.Int64("p", 29, "small prime modulus")
	q := fs.Int64("q", 512, "large modulus")
	d := fs.Int("d", 2, "ternary weight")
	seed := fs.String("seed", "", "deterministic seed")
	text := fs.String("text", "", "text message")
	nums := fs.String("nums", "", "comma-separated numeric message")
	fs.Parse(args)

	msg, err := parseMessage(*text, *nums)
	if err != nil {
		log.Fatalf("message: %v", err)
	}
	par, err := ntru.NewParams(*n, *p, *q, *d)
	if err != nil {
		log.Fatalf("parameters: %v", err)
	}
	prng, err := newPRNG(*seed)
	if err != nil {
		log.Fatalf("prng: %v", err)
	}

	priv, pub, err := ntru.GenerateKeyPair(par, prng, ntru.KeygenOpts{})
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	printJSON("public key", keys.FromPublic(pub))

	m, err := msg.Encode(par)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	e, err := ntru.Encrypt(pub, m, prng)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	printJSON("ciphertext", keys.FromCiphertext(par, e))

	rec, err := ntru.Decrypt(priv, e)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	switch msg.(type) {
	case message.Text:
		out, err := message.DecodeText(par, rec)
		if err != nil {
			log.Fatalf("decode: %v", err)
		}
		fmt.Printf("decrypted text: %q\n", string(out))
	case message.Numeric:
		out, err := message.DecodeNumeric(par, rec)
		if err != nil {
			log.Fatalf("decode: %v", err)
		}
		fmt.Printf("decrypted values: %v\n", []int64(out))
	}
}

func parseMessage(text, nums string) (message.Message, error) {
	switch {
	case text != "" && nums != "":
		return nil, fmt.Errorf("use either -text or -nums, not both")
	case text != "":
		return message.Text(text), nil
	case nums != "":
		parts := strings.Split(nums, ",")
		v := make(message.Numeric, 0, len(parts))
		for _, s := range parts {
			c, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", s, err)
			}
			v = append(v, c)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("a message is required (-text or -nums)")
	}
}

type marshaler interface {
	Marshal() ([]byte, error)
}

func printJSON(label string, m marshaler) {
	data, err := m.Marshal()
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
	fmt.Printf("%s:\n%s\n", label, data)
}
