package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("findmode: ")

	file := flag.String("file", "", "file with one value per line, stdin if empty")
	hashName := flag.String("hash", "sum", "hash algorithm used by -stat, one of sum, weighted, crc32, xxhash")
	capacity := flag.Int("capacity", 11, "initial capacity used by -stat")
	crtName := flag.String("crt", "sc", "collision resolution technique used by -stat, qp or sc")
	stat := flag.Bool("stat", false, "also load the counts into a hash map and print its statistics")
	flag.Parse()

	values, err := readValues(*file)
	checkErr(err)

	mode, frequency := memhashmap.FindMode(values)
	fmt.Printf("mode: %s\n", strings.Join(mode, ", "))
	fmt.Printf("frequency: %d\n", frequency)

	if !*stat {
		return
	}

	crtType, err := parseCRT(*crtName)
	checkErr(err)
	algorithm, err := hashfunc.Parse(*hashName)
	checkErr(err)
	h, err := hashfunc.New(algorithm)
	checkErr(err)

	hm, info, err := memhashmap.NewHashMap(crtType, *capacity, h)
	checkErr(err)

	for _, v := range values {
		n := 0
		if c, err := hm.Get(v); err == nil {
			n = c.(int)
		}
		checkErr(hm.Put(v, n+1))
	}

	s := hm.Stat(false)
	fmt.Printf("technique: %s (%s)\n", crt.Name(info.CollisionResolutionTechnique), algorithm)
	fmt.Printf("capacity: %d\n", hm.GetCapacity())
	fmt.Printf("records: %d\n", s.Records)
	fmt.Printf("empty buckets: %d\n", s.EmptyBuckets)
	fmt.Printf("tombstones: %d\n", s.Tombstones)
	fmt.Printf("table load: %.3f\n", s.TableLoad)
	fmt.Printf("max bucket records: %d\n", s.MaxBucketRecords)
}

func readValues(file string) (values []string, err error) {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	err = scanner.Err()

	return
}

func parseCRT(name string) (crtType int, err error) {
	switch name {
	case "qp":
		crtType = crt.QuadraticProbing
	case "sc":
		crtType = crt.SeparateChaining
	default:
		err = fmt.Errorf("unknown collision resolution technique %q", name)
	}

	return
}

func checkErr(err error) {
	if err != nil {
		log.Fatalf("got error: %q\n", err)
	}
}
