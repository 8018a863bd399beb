package cli

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/bcd"
	"github.com/calebcase/bcd/integer"
)

func parseValue(s string) (v *big.Int, err error) {
	v, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		return nil, Error.New("invalid decimal value %q", s)
	}

	return v, nil
}

func parseHex(s string) (data []byte, err error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.NewReplacer(" ", "", "_", "", ":", "").Replace(s)

	// Odd length input is missing its leading zero nibble.
	if len(s)%2 == 1 {
		s = "0" + s
	}

	data, err = hex.DecodeString(s)
	if err != nil {
		return nil, Error.New("invalid hex %q: %v", s, err)
	}

	return data, nil
}

func dynamicResult(d bcd.Dynamic) result {
	return result{
		Value: d.String(),
		Bytes: d.Len(),
		Hex:   hex.EncodeToString(d.Bytes()),
	}
}

func newEncodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a decimal value as packed BCD",
		Long: `Encode a decimal value as packed BCD.

Without --bytes (or a configured width) the fewest bytes able to hold the
value are used. With a width, values that do not fit are rejected.

Example:
  bcd encode 12345         # 012345
  bcd encode 45 --bytes 4  # 00000045`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}

			n := a.cfg.Bytes
			if cmd.Flags().Changed("bytes") {
				n, err = cmd.Flags().GetInt("bytes")
				if err != nil {
					return err
				}
			}

			var d bcd.Dynamic
			if n == 0 {
				d, err = bcd.NewDynamicBig(v)
			} else {
				d, err = bcd.NewDynamicBigN(v, n)
			}
			if err != nil {
				return err
			}

			a.log.Debug("encoded", "value", v, "bytes", d.Len())

			r := dynamicResult(d)

			return a.print(cmd, r, r.Hex)
		},
	}

	cmd.Flags().IntP("bytes", "n", 0, "width in bytes (0 is minimal)")

	return cmd
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode packed BCD to a decimal value",
		Long: `Decode packed BCD to a decimal value.

Every nibble must be a decimal digit.

Example:
  bcd decode 1234  # 1234
  bcd decode 00af  # error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			data, err := parseHex(args[0])
			if err != nil {
				return err
			}

			d, err := bcd.DynamicFromBytes(data)
			if err != nil {
				return err
			}

			a.log.Debug("decoded", "bytes", d.Len())

			r := dynamicResult(d)

			return a.print(cmd, r, r.Value)
		},
	}
}

func newResizeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize <hex>",
		Short: "Change the width of a packed BCD value",
		Long: `Change the width of a packed BCD value.

Shrinking drops the leading (most significant) bytes, growing prepends
zero bytes. Shrinking is lossy when a dropped byte is not zero.

Example:
  bcd resize 1234 --bytes 1  # 34
  bcd resize 34 --bytes 2    # 0034`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			n, err := cmd.Flags().GetInt("bytes")
			if err != nil {
				return err
			}

			if n < 0 {
				return Error.New("invalid width: %d", n)
			}

			data, err := parseHex(args[0])
			if err != nil {
				return err
			}

			d, err := bcd.DynamicFromBytes(data)
			if err != nil {
				return err
			}

			out := d.Resize(n)

			r := dynamicResult(out)
			r.Truncated = out.Big().Cmp(d.Big()) != 0

			if r.Truncated {
				a.log.Info("resize dropped digits", "from", d.String(), "to", out.String())
			}

			return a.print(cmd, r, r.Hex)
		},
	}

	cmd.Flags().IntP("bytes", "n", 0, "width in bytes")
	_ = cmd.MarkFlagRequired("bytes")

	return cmd
}

func bitsFlag(cmd *cobra.Command) (bits int, err error) {
	bits, err = cmd.Flags().GetInt("bits")
	if err != nil {
		return 0, err
	}

	switch bits {
	case 8, 16, 32, 64:
		return bits, nil
	default:
		return 0, Error.New("invalid bits %d: want 8, 16, 32 or 64", bits)
	}
}

// pack stores the BCD digits of v in a bits wide register.
func pack(v uint64, bits int) (packed uint64, err error) {
	switch bits {
	case 8:
		p, err := integer.Pack(uint8(v))
		return uint64(p), err
	case 16:
		p, err := integer.Pack(uint16(v))
		return uint64(p), err
	case 32:
		p, err := integer.Pack(uint32(v))
		return uint64(p), err
	default:
		return integer.Pack(v)
	}
}

// unpack is the inverse of pack.
func unpack(v uint64, bits int) (unpacked uint64, err error) {
	switch bits {
	case 8:
		u, err := integer.Unpack(uint8(v))
		return uint64(u), err
	case 16:
		u, err := integer.Unpack(uint16(v))
		return uint64(u), err
	case 32:
		u, err := integer.Unpack(uint32(v))
		return uint64(u), err
	default:
		return integer.Unpack(v)
	}
}

func newPackCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <value>",
		Short: "Store the BCD digits of a value in an integer register",
		Long: `Store the BCD digits of a value in an integer register of the same width.

Example:
  bcd pack 1234 --bits 16  # 0x1234`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			bits, err := bitsFlag(cmd)
			if err != nil {
				return err
			}

			v, err := strconv.ParseUint(strings.ReplaceAll(args[0], "_", ""), 10, bits)
			if err != nil {
				return Error.New("invalid %d bit value %q: %v", bits, args[0], err)
			}

			packed, err := pack(v, bits)
			if err != nil {
				return err
			}

			text := fmt.Sprintf("0x%0*x", bits/4, packed)

			return a.print(cmd, result{
				Value: strconv.FormatUint(v, 10),
				Bytes: bits / 8,
				Hex:   text[2:],
			}, text)
		},
	}

	cmd.Flags().IntP("bits", "b", 32, "register width: 8, 16, 32 or 64")

	return cmd
}

func newUnpackCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Read the BCD digits stored in an integer register",
		Long: `Read the BCD digits stored in an integer register.

Example:
  bcd unpack 0x1234 --bits 16  # 1234`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			bits, err := bitsFlag(cmd)
			if err != nil {
				return err
			}

			s := strings.TrimPrefix(strings.ToLower(args[0]), "0x")

			v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 16, bits)
			if err != nil {
				return Error.New("invalid %d bit register %q: %v", bits, args[0], err)
			}

			unpacked, err := unpack(v, bits)
			if err != nil {
				return err
			}

			text := strconv.FormatUint(unpacked, 10)

			return a.print(cmd, result{
				Value: text,
				Bytes: bits / 8,
				Hex:   fmt.Sprintf("%0*x", bits/4, v),
			}, text)
		},
	}

	cmd.Flags().IntP("bits", "b", 32, "register width: 8, 16, 32 or 64")

	return cmd
}
