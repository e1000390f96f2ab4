package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-laravel-telephone/framework/config"
	"github.com/km-arc/go-laravel-telephone/phone"
	"github.com/km-arc/go-laravel-telephone/telephone"
)

var errInvalidNumber = errors.New("not a valid phone number")

var checkCountry string

var checkCmd = &cobra.Command{
	Use:   "check <number>",
	Short: "Parse and validate a phone number the way the field would",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country := checkCountry
		if country == "" {
			country = config.Load(envFile).Telephone.DefaultCountryCode
		}
		return runCheck(cmd.OutOrStdout(), phone.NewLibrary(), country, strings.Join(args, " "))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkCountry, "country", "c", "", "ISO 3166-1 alpha-2 region (default TELEPHONE_DEFAULT_COUNTRY)")
}

func runCheck(w io.Writer, capability phone.Capability, country, raw string) error {
	v := telephone.New(capability, country, raw)
	e := telephone.ExportValue(v)

	fmt.Fprintf(w, "country:       %s\n", e.CountryCode)
	if e.CallingCode != 0 {
		fmt.Fprintf(w, "calling code:  +%d\n", e.CallingCode)
	}
	fmt.Fprintf(w, "raw input:     %s\n", e.RawInput)
	switch {
	case !v.HasInput():
		fmt.Fprintln(w, "parsed:        no input")
	case v.IsUnparsed():
		fmt.Fprintf(w, "parsed:        no (%v)\n", v.ParseError())
	default:
		fmt.Fprintf(w, "e164:          %s\n", e.Number)
		fmt.Fprintf(w, "international: %s\n", e.International)
		fmt.Fprintf(w, "national:      %s\n", e.National)
	}
	if stored, ok := telephone.Serialize(v); ok {
		fmt.Fprintf(w, "stored:        %s\n", stored)
	}

	if o := telephone.Validate(v); !o.IsValid() {
		fmt.Fprintf(w, "valid:         no (%s)\n", o.Message())
		return errInvalidNumber
	}
	fmt.Fprintln(w, "valid:         yes")
	return nil
}
