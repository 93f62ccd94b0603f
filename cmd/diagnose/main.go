// Diagnostic tool for inspecting damaged PNG files.
//
// Unlike pngme, which rejects a file at the first structural error, this
// walks every chunk it can frame and reports each problem it finds.
package main

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-pngme/internal/binary"
	"github.com/robert-malhotra/go-pngme/internal/signature"
	"github.com/robert-malhotra/go-pngme/png"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/diagnose/main.go <file.png>")
		os.Exit(1)
	}

	filename := os.Args[1]
	fmt.Printf("=== Analyzing %s ===\n\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("ERROR: Failed to read file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Size: %d bytes\n", len(data))

	if i := signature.Mismatch(data); i >= 0 {
		fmt.Printf("Signature: INVALID (first difference at byte %d)\n", i)
		os.Exit(1)
	}
	fmt.Printf("Signature: ok\n\n")

	problems := walkChunks(data)

	fmt.Println()
	if problems > 0 {
		fmt.Printf("%d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Println("No problems found")
}

// walkChunks prints one block per chunk and returns the number of
// problems seen. It only stops when a chunk cannot be framed.
func walkChunks(data []byte) int {
	r := binary.NewReader(data, binary.DefaultConfig())
	r.Skip(signature.Size)

	problems := 0
	for index := 0; r.Remaining() > 0; index++ {
		offset := r.Pos()
		length, err := r.ReadUint32()
		if err != nil {
			fmt.Printf("[%d] @%d: TRUNCATED length field (%d trailing bytes)\n", index, offset, r.Remaining())
			return problems + 1
		}
		rawType, err := r.ReadBytes(4)
		if err != nil {
			fmt.Printf("[%d] @%d: TRUNCATED type field\n", index, offset)
			return problems + 1
		}
		if uint64(r.Remaining()) < uint64(length)+4 {
			fmt.Printf("[%d] @%d %q: TRUNCATED, declares %d payload bytes, %d remain\n",
				index, offset, rawType, length, r.Remaining())
			return problems + 1
		}
		payload, _ := r.ReadBytes(int(length))
		stored, _ := r.ReadUint32()

		fmt.Printf("[%d] @%d %q\n", index, offset, rawType)
		fmt.Printf("    Length: %d\n", length)

		code, err := png.TypeCodeFromBytes([4]byte(rawType))
		if err != nil {
			fmt.Printf("    Type: INVALID (%v)\n", err)
			problems++
		} else {
			fmt.Printf("    Flags: critical=%t public=%t reserved-ok=%t safe-to-copy=%t\n",
				code.IsCritical(), code.IsPublic(), code.IsReservedBitValid(), code.IsSafeToCopy())
			if !code.IsReservedBitValid() {
				problems++
			}
		}

		computed := binary.CRC32(rawType, payload)
		if computed == stored {
			fmt.Printf("    CRC: 0x%08x ok\n", stored)
		} else {
			fmt.Printf("    CRC: MISMATCH stored 0x%08x, computed 0x%08x\n", stored, computed)
			problems++
		}
	}
	return problems
}
