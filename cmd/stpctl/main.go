package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"stp-signer/config"
	"stp-signer/internal/adapter/stp"
	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports"
	"stp-signer/internal/service"
	"stp-signer/pkg/logger"

	"github.com/urfave/cli/v2"
)

var flagConfig *cli.StringFlag = &cli.StringFlag{
	Name:    "config",
	Usage:   "Path to config file",
	EnvVars: []string{"STP_CONFIG"},
}

var flagFile *cli.StringFlag = &cli.StringFlag{
	Name:  "file",
	Value: "-",
	Usage: "JSON record to read, - for stdin",
}

var flagSubmit *cli.BoolFlag = &cli.BoolFlag{
	Name:  "submit",
	Usage: "Send the signed instruction to STP",
}

var flagBaja *cli.BoolFlag = &cli.BoolFlag{
	Name:  "baja",
	Usage: "Sign an account removal instead of a registration",
}

var flagEndpoint *cli.StringFlag = &cli.StringFlag{
	Name:  "endpoint",
	Value: service.EndpointRegistraOrden,
	Usage: "STP endpoint the response came from",
}

var flagSubject *cli.StringFlag = &cli.StringFlag{
	Name:     "subject",
	Usage:    "Operator the token is issued to",
	Required: true,
}

func main() {
	app := &cli.App{
		Name:  "stpctl",
		Usage: "sign and inspect STP instructions",
		Flags: []cli.Flag{flagConfig},
		Commands: []*cli.Command{
			{
				Name:  "firma",
				Usage: "validate and sign an instruction",
				Subcommands: []*cli.Command{
					{
						Name:  "orden",
						Usage: "sign a payment order",
						Flags: []cli.Flag{flagFile, flagSubmit},
						Action: func(cCtx *cli.Context) error {
							svc, err := newInstructionService(cCtx)
							if err != nil {
								return err
							}
							rec, err := readRecord(cCtx.String(flagFile.Name))
							if err != nil {
								return err
							}
							call := svc.PrepareOrden
							if cCtx.Bool(flagSubmit.Name) {
								call = svc.RegistraOrden
							}
							return printSigned(cCtx, call, rec)
						},
					},
					{
						Name:  "cuenta",
						Usage: "sign a physical person account registration",
						Flags: []cli.Flag{flagFile, flagSubmit, flagBaja},
						Action: func(cCtx *cli.Context) error {
							svc, err := newInstructionService(cCtx)
							if err != nil {
								return err
							}
							rec, err := readRecord(cCtx.String(flagFile.Name))
							if err != nil {
								return err
							}
							call := svc.PrepareCuenta
							switch {
							case cCtx.Bool(flagSubmit.Name) && cCtx.Bool(flagBaja.Name):
								call = svc.BajaCuenta
							case cCtx.Bool(flagSubmit.Name):
								call = svc.AltaCuenta
							}
							return printSigned(cCtx, call, rec)
						},
					},
				},
			},
			{
				Name:      "clabe",
				Usage:     "validate a CLABE and show its zones",
				ArgsUsage: "<clabe>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return cli.Exit("expected exactly one CLABE", 2)
					}
					clabe, err := domain.ParseClabe(cCtx.Args().First())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					name, _ := domain.BankName(clabe.BankCode)
					fmt.Fprintf(cCtx.App.Writer, "banco:   %s (%s)\nplaza:   %s\ncuenta:  %s\ncontrol: %d\n",
						clabe.BankCode, name, clabe.Plaza, clabe.Account, clabe.CheckDigit)
					return nil
				},
			},
			{
				Name:  "clasifica",
				Usage: "classify a raw STP response body",
				Flags: []cli.Flag{flagFile, flagEndpoint},
				Action: func(cCtx *cli.Context) error {
					body, err := readInput(cCtx.String(flagFile.Name))
					if err != nil {
						return err
					}
					stpErr := service.ClassifyBody(cCtx.String(flagEndpoint.Name), body)
					if stpErr == nil {
						fmt.Fprintln(cCtx.App.Writer, "ok")
						return nil
					}
					return writeJSON(cCtx.App.Writer, stpErr)
				},
			},
			{
				Name:  "token",
				Usage: "issue an operator bearer token",
				Flags: []cli.Flag{flagSubject},
				Action: func(cCtx *cli.Context) error {
					cfg, err := config.Load(cCtx.String(flagConfig.Name))
					if err != nil {
						return err
					}
					if cfg.JWT.Secret == "" {
						return cli.Exit("jwt.secret is required", 1)
					}
					tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
					token, expiresAt, err := tokens.Generate(cCtx.String(flagSubject.Name), cfg.STP.Empresa)
					if err != nil {
						return err
					}
					fmt.Fprintln(cCtx.App.Writer, token)
					fmt.Fprintf(cCtx.App.ErrWriter, "expires at %s\n", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newInstructionService builds an offline service: no tracking key store
// and no audit trail. The STP client is only used with --submit.
func newInstructionService(cCtx *cli.Context) (ports.InstructionService, error) {
	cfg, err := config.Load(cCtx.String(flagConfig.Name))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewWithWriter("stpctl", cfg.Log.Level, cCtx.App.ErrWriter)

	pemBytes, err := os.ReadFile(cfg.STP.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	signer, err := service.LoadSigner(pemBytes, cfg.STP.PrivateKeyPassphrase)
	if err != nil {
		return nil, err
	}

	company := domain.NewCompany(cfg.STP.Empresa, cfg.STP.BankCode, cfg.STP.CuentaOrdenante)
	gateway := stp.NewClient(cfg.STP.BaseURL, cfg.STP.Timeout, log)
	return service.NewInstructionService(company, signer, nil, gateway, nil, 0, log), nil
}

func printSigned(cCtx *cli.Context, call func(context.Context, domain.Record) (*domain.SignedInstruction, error), rec domain.Record) error {
	signed, err := call(cCtx.Context, rec)
	if err != nil {
		return err
	}
	return writeJSON(cCtx.App.Writer, signed)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readRecord(path string) (domain.Record, error) {
	f := os.Stdin
	if path != "" && path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var rec domain.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("record must be a JSON object")
	}
	return rec, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
