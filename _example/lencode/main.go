package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/kr/pretty"
	"github.com/octu0/lencode"
	"github.com/pkg/errors"
)

var (
	countFlag      = flag.Int("n", 0, "encode range(n) instead of the positional integers")
	policyFlag     = flag.String("policy", "", "minimal, fixed or lencoded")
	fixedFlag      = flag.Bool("fixed", false, "same as -policy fixed")
	lencodeFlag    = flag.Bool("lencode", false, "same as -policy lencoded")
	verboseFlag    = flag.Bool("v", false, "print every inserted codeword")
	dumpFlag       = flag.Bool("dump", false, "print the codeword plan")
	outFlag        = flag.String("o", "", "write packed bytes to this file")
	compressFlag   = flag.String("compress", "none", "none, xz, brotli or runlength for -o")
	partitionsFlag = flag.Int("partitions", 0, "encode every ascending partition of 1..N")
	stateFlag      = flag.String("state", "", "stream snapshot to resume from and save to")
)

func selectPolicy() (lencode.Policy, error) {
	p, err := lencode.PolicyFromFlags(*fixedFlag, *lencodeFlag)
	if err != nil {
		return p, err
	}
	if *policyFlag == "" {
		return p, nil
	}
	if *fixedFlag || *lencodeFlag {
		return p, errors.Wrap(lencode.ErrPolicyConflict, "-policy with -fixed or -lencode")
	}
	return lencode.ParsePolicy(*policyFlag)
}

// countArg returns the -n value only when the flag was given.
func countArg() *int {
	var n *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			n = countFlag
		}
	})
	return n
}

func selectSource(args []string, n *int) (lencode.Source, error) {
	var values []any
	if 0 < len(args) {
		values = make([]any, len(args))
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return lencode.Source{}, errors.Wrapf(lencode.ErrNotInteger, "%q", a)
			}
			values[i] = v
		}
	}
	return lencode.Resolve(values, n), nil
}

// encodePartitions writes every partition of 1..upto into bs. Under the
// minimal policy it checks that the shared stream equals the parts
// encoded one by one. Partitions are not class-ordered across each other,
// so under the lencoded policy every partition starts its own length
// classes.
func encodePartitions(bs *lencode.BitStream, upto int, p lencode.Policy, opts []lencode.Option) error {
	singles := ""
	for n := 1; n <= upto; n += 1 {
		for part := range ascendingPartitions(n) {
			if p == lencode.LenCoded {
				codewords, err := lencode.Codewords(lencode.Seq(part...), p)
				if err != nil {
					return errors.Wrapf(err, "partition %v", part)
				}
				for _, c := range codewords {
					bs.Append(c)
				}
			} else if _, err := lencode.Encode(lencode.Seq(part...), p, opts...); err != nil {
				return errors.Wrapf(err, "partition %v", part)
			}
			for _, v := range part {
				s, err := lencode.Encode(lencode.Seq(v), p)
				if err != nil {
					return err
				}
				singles += s.String()
			}
		}
	}
	if p == lencode.Minimal && bs.String() != singles {
		return errors.New("the individual bitstrings don't concatenate into the bitstream")
	}
	return nil
}

func run() error {
	p, err := selectPolicy()
	if err != nil {
		return err
	}
	bs, err := loadState(*stateFlag)
	if err != nil {
		return err
	}
	start := bs.Len()
	opts := []lencode.Option{
		lencode.WithStream(bs),
		lencode.WithVerbose(*verboseFlag),
	}

	if 0 < *partitionsFlag {
		if 0 < start {
			return errors.New("-partitions needs an empty stream")
		}
		if err := encodePartitions(bs, *partitionsFlag, p, opts); err != nil {
			return err
		}
	} else {
		src, err := selectSource(flag.Args(), countArg())
		if err != nil {
			return err
		}
		if *dumpFlag {
			codewords, err := lencode.Codewords(src, p)
			if err != nil {
				return err
			}
			pretty.Println(codewords)
		}
		if _, err := lencode.Encode(src, p, opts...); err != nil {
			return err
		}
	}

	fmt.Println(bs)
	fmt.Printf("%s: +%d bit, %d bit total\n", p, bs.Len()-start, bs.Len())

	if *outFlag != "" {
		if err := writeOutput(bs, *outFlag, *compressFlag); err != nil {
			return err
		}
	}
	return saveState(bs, *stateFlag)
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
}
