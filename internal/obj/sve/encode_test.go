// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sve

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dotnet/runtime-sub004/internal/obj"
)

// An encCase is one builder call from testdata/encodings.yaml.
type encCase struct {
	Call string   `yaml:"call"`
	Op   string   `yaml:"op"`
	Opt  string   `yaml:"opt"`
	Regs []string `yaml:"regs"`
	Sopt string   `yaml:"sopt"`
	Imm  int64    `yaml:"imm"`
	Imm2 int64    `yaml:"imm2"`
	Fimm float64  `yaml:"fimm"`
	Pat  string   `yaml:"pat"`
	Prf  string   `yaml:"prf"`
	Word uint32   `yaml:"word"`
	Asm  string   `yaml:"asm"`
}

var testOps = map[string]Op{
	"AADDPL":    AADDPL,
	"AADDVL":    AADDVL,
	"ABRKA":     ABRKA,
	"ABRKBS":    ABRKBS,
	"ABRKN":     ABRKN,
	"ABRKPA":    ABRKPA,
	"ACNTB":     ACNTB,
	"ACNTD":     ACNTD,
	"ACTERMEQ":  ACTERMEQ,
	"ACTERMNE":  ACTERMNE,
	"ADECW":     ADECW,
	"AINCB":     AINCB,
	"AINCD":     AINCD,
	"AINCH":     AINCH,
	"AINCW":     AINCW,
	"APAND":     APAND,
	"APCNTP":    APCNTP,
	"APEOR":     APEOR,
	"APFALSE":   APFALSE,
	"APFIRST":   APFIRST,
	"APMOV":     APMOV,
	"APMOVS":    APMOVS,
	"APNAND":    APNAND,
	"APNEXT":    APNEXT,
	"APNOT":     APNOT,
	"APORR":     APORR,
	"APORRS":    APORRS,
	"APRDFFR":   APRDFFR,
	"APRDFFRS":  APRDFFRS,
	"APRFB":     APRFB,
	"APRFD":     APRFD,
	"APRFH":     APRFH,
	"APRFW":     APRFW,
	"APSEL":     APSEL,
	"APTEST":    APTEST,
	"APTRUE":    APTRUE,
	"APTRUES":   APTRUES,
	"APUNPKHI":  APUNPKHI,
	"APWRFFR":   APWRFFR,
	"ARDVL":     ARDVL,
	"ASETFFR":   ASETFFR,
	"AWHILEGE":  AWHILEGE,
	"AWHILELO":  AWHILELO,
	"AWHILELT":  AWHILELT,
	"AZABS":     AZABS,
	"AZADD":     AZADD,
	"AZAND":     AZAND,
	"AZASR":     AZASR,
	"AZASRD":    AZASRD,
	"AZBDEP":    AZBDEP,
	"AZBFCVT":   AZBFCVT,
	"AZBFDOT":   AZBFDOT,
	"AZBFMLALB": AZBFMLALB,
	"AZBIC":     AZBIC,
	"AZBSL":     AZBSL,
	"AZCADD":    AZCADD,
	"AZCLASTA":  AZCLASTA,
	"AZCLASTB":  AZCLASTB,
	"AZCMLA":    AZCMLA,
	"AZCMPEQ":   AZCMPEQ,
	"AZCMPHI":   AZCMPHI,
	"AZCMPLE":   AZCMPLE,
	"AZCMPLO":   AZCMPLO,
	"AZCMPLT":   AZCMPLT,
	"AZCOMPACT": AZCOMPACT,
	"AZCPY":     AZCPY,
	"AZDECP":    AZDECP,
	"AZDUP":     AZDUP,
	"AZDUPM":    AZDUPM,
	"AZEON":     AZEON,
	"AZEOR":     AZEOR,
	"AZEOR3":    AZEOR3,
	"AZEXT":     AZEXT,
	"AZFACLT":   AZFACLT,
	"AZFADD":    AZFADD,
	"AZFADDA":   AZFADDA,
	"AZFADDV":   AZFADDV,
	"AZFCADD":   AZFCADD,
	"AZFCMEQ":   AZFCMEQ,
	"AZFCMGT":   AZFCMGT,
	"AZFCMLA":   AZFCMLA,
	"AZFCMLE":   AZFCMLE,
	"AZFCMUO":   AZFCMUO,
	"AZFCPY":    AZFCPY,
	"AZFCVT":    AZFCVT,
	"AZFCVTZS":  AZFCVTZS,
	"AZFDUP":    AZFDUP,
	"AZFEXPA":   AZFEXPA,
	"AZFMAX":    AZFMAX,
	"AZFMLA":    AZFMLA,
	"AZFMMLA":   AZFMMLA,
	"AZFMOV":    AZFMOV,
	"AZFMUL":    AZFMUL,
	"AZFRECPE":  AZFRECPE,
	"AZFRECPS":  AZFRECPS,
	"AZFRINTN":  AZFRINTN,
	"AZFSQRT":   AZFSQRT,
	"AZFSUB":    AZFSUB,
	"AZFTMAD":   AZFTMAD,
	"AZINCP":    AZINCP,
	"AZINDEX":   AZINDEX,
	"AZINSR":    AZINSR,
	"AZLASTA":   AZLASTA,
	"AZLASTB":   AZLASTB,
	"AZLD1B":    AZLD1B,
	"AZLD1D":    AZLD1D,
	"AZLD1H":    AZLD1H,
	"AZLD1W":    AZLD1W,
	"AZLD2B":    AZLD2B,
	"AZLD2H":    AZLD2H,
	"AZLD2W":    AZLD2W,
	"AZLD3W":    AZLD3W,
	"AZLD4B":    AZLD4B,
	"AZLD4D":    AZLD4D,
	"AZLDR":     AZLDR,
	"AZLSL":     AZLSL,
	"AZLSR":     AZLSR,
	"AZMAD":     AZMAD,
	"AZMLA":     AZMLA,
	"AZMOV":     AZMOV,
	"AZMOVPRFX": AZMOVPRFX,
	"AZMUL":     AZMUL,
	"AZORN":     AZORN,
	"AZORR":     AZORR,
	"AZRBIT":    AZRBIT,
	"AZREV":     AZREV,
	"AZREVB":    AZREVB,
	"AZSABA":    AZSABA,
	"AZSADDV":   AZSADDV,
	"AZSCVTF":   AZSCVTF,
	"AZSDIV":    AZSDIV,
	"AZSDOT":    AZSDOT,
	"AZSEL":     AZSEL,
	"AZSMAXV":   AZSMAXV,
	"AZSMIN":    AZSMIN,
	"AZSMMLA":   AZSMMLA,
	"AZSPLICE":  AZSPLICE,
	"AZSQADD":   AZSQADD,
	"AZST1B":    AZST1B,
	"AZST1D":    AZST1D,
	"AZST1H":    AZST1H,
	"AZST1W":    AZST1W,
	"AZST2D":    AZST2D,
	"AZST3B":    AZST3B,
	"AZST4H":    AZST4H,
	"AZSTR":     AZSTR,
	"AZSUB":     AZSUB,
	"AZSUBR":    AZSUBR,
	"AZSUNPKLO": AZSUNPKLO,
	"AZSXTB":    AZSXTB,
	"AZTBL":     AZTBL,
	"AZUADDV":   AZUADDV,
	"AZUCVTF":   AZUCVTF,
	"AZUDOT":    AZUDOT,
	"AZUMAX":    AZUMAX,
	"AZUQSUB":   AZUQSUB,
	"AZUSDOT":   AZUSDOT,
	"AZZIP1":    AZZIP1,
}

func loadCases(t *testing.T) []encCase {
	t.Helper()
	data, err := os.ReadFile("testdata/encodings.yaml")
	require.NoError(t, err)
	var cases []encCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	// An unquoted " #imm" reads as a comment and silently cuts the
	// expected text short, so every asm value must be quoted whole.
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Content, 1)
	items := doc.Content[0].Content
	require.Len(t, items, len(cases))
	for i, item := range items {
		v := mappingValue(item, "asm")
		require.NotNil(t, v, "case %d has no asm", i)
		assert.Equal(t, yaml.DoubleQuotedStyle, v.Style, "line %d: asm must be quoted", v.Line)
		assert.Empty(t, v.LineComment, "line %d: asm cut short", v.Line)
	}
	return cases
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func parseReg(s string) (Reg, error) {
	switch s {
	case "sp":
		return RSP, nil
	case "wsp":
		return WSP, nil
	case "xzr":
		return RZR, nil
	case "wzr":
		return WZR, nil
	}
	var base Reg
	num := ""
	switch {
	case strings.HasPrefix(s, "pn"):
		base, num = P0, s[2:]
	case strings.HasPrefix(s, "x"):
		base, num = R0, s[1:]
	case strings.HasPrefix(s, "w"):
		base, num = W0, s[1:]
	case strings.HasPrefix(s, "z"), strings.HasPrefix(s, "v"):
		base, num = Z0, s[1:]
	case strings.HasPrefix(s, "p"):
		base, num = P0, s[1:]
	default:
		return RegNone, fmt.Errorf("bad register %q", s)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 31 {
		return RegNone, fmt.Errorf("bad register %q", s)
	}
	return base + Reg(n), nil
}

func parseOpt(s string) (Opt, error) {
	if s == "" {
		return OptNone, nil
	}
	for o := OptNone; o < numOpts; o++ {
		if o.String() == s {
			return o, nil
		}
	}
	return OptNone, fmt.Errorf("bad arrangement %q", s)
}

func parseSopt(s string) (ScalableOpt, error) {
	if s == "" {
		return SoptNone, nil
	}
	for o := SoptNone; int(o) < len(soptNames); o++ {
		if o.String() == s {
			return o, nil
		}
	}
	return SoptNone, fmt.Errorf("bad option %q", s)
}

func parsePattern(s string) (Pattern, error) {
	for p := Pattern(0); p < 32; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("bad pattern %q", s)
}

func parsePrfop(s string) (Prfop, error) {
	for p := Prfop(0); p < 16; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("bad prefetch operation %q", s)
}

// emit makes the builder call c describes.
func (c encCase) emit(e *Emitter) error {
	op, ok := testOps[c.Op]
	if !ok {
		return fmt.Errorf("unknown opcode %q", c.Op)
	}
	opt, err := parseOpt(c.Opt)
	if err != nil {
		return err
	}
	sopt, err := parseSopt(c.Sopt)
	if err != nil {
		return err
	}
	var r [4]Reg
	for i, s := range c.Regs {
		if r[i], err = parseReg(s); err != nil {
			return err
		}
	}
	var pat Pattern
	if c.Pat != "" {
		if pat, err = parsePattern(c.Pat); err != nil {
			return err
		}
	}
	var prf Prfop
	if c.Prf != "" {
		if prf, err = parsePrfop(c.Prf); err != nil {
			return err
		}
	}

	switch c.Call {
	case "Ins":
		e.Ins(op)
	case "InsR":
		e.InsR(op, opt, r[0], sopt)
	case "InsRI":
		e.InsRI(op, opt, r[0], c.Imm, sopt)
	case "InsRF":
		e.InsRF(op, opt, r[0], c.Fimm)
	case "InsRII":
		e.InsRII(op, opt, r[0], c.Imm, c.Imm2)
	case "InsRR":
		e.InsRR(op, opt, r[0], r[1], sopt)
	case "InsRRI":
		e.InsRRI(op, opt, r[0], r[1], c.Imm, sopt)
	case "InsRRF":
		e.InsRRF(op, opt, r[0], r[1], c.Fimm, sopt)
	case "InsRRR":
		e.InsRRR(op, opt, r[0], r[1], r[2], sopt)
	case "InsRRRI":
		e.InsRRRI(op, opt, r[0], r[1], r[2], c.Imm, sopt)
	case "InsRRRII":
		e.InsRRRII(op, opt, r[0], r[1], r[2], c.Imm, c.Imm2, sopt)
	case "InsRRRR":
		e.InsRRRR(op, opt, r[0], r[1], r[2], r[3], sopt)
	case "InsRRRRI":
		e.InsRRRRI(op, opt, r[0], r[1], r[2], r[3], c.Imm, sopt)
	case "InsRPattern":
		e.InsRPattern(op, opt, r[0], pat)
	case "InsRPatternI":
		e.InsRPatternI(op, opt, r[0], pat, c.Imm)
	case "InsPrefetchRRI":
		e.InsPrefetchRRI(op, prf, r[0], r[1], c.Imm)
	case "InsPrefetchRRR":
		e.InsPrefetchRRR(op, prf, r[0], r[1], r[2])
	default:
		return fmt.Errorf("unknown entry point %q", c.Call)
	}
	return nil
}

// emitCase runs c against e, turning a builder assertion into an error.
func emitCase(e *Emitter, c encCase) error {
	var err error
	if aerr := Catch(func() { err = c.emit(e) }); aerr != nil {
		return aerr
	}
	return err
}

func TestEncodings(t *testing.T) {
	for _, c := range loadCases(t) {
		t.Run(c.Asm, func(t *testing.T) {
			g := NewGroup()
			e := NewGroupEmitter(g)
			require.NoError(t, emitCase(e, c))
			require.Equal(t, 1, g.Len())

			in := g.Instrs()[0]
			assert.Equal(t, fmt.Sprintf("%08x", c.Word), fmt.Sprintf("%08x", Pack(in)), "%s", in.Dump())
			assert.Equal(t, c.Asm, Disasm(in))
			assert.Equal(t, c.Asm, in.String())
			assert.NoError(t, Verify(in))
		})
	}
}

func TestEncodingStream(t *testing.T) {
	cases := loadCases(t)
	g := NewGroup()
	e := NewGroupEmitter(g, WithVerify(true))
	want := make([]uint32, 0, len(cases))
	for _, c := range cases {
		require.NoError(t, emitCase(e, c), c.Asm)
		want = append(want, c.Word)
	}
	require.Len(t, e.Pending(), len(cases))
	require.NoError(t, g.Verify())

	var flushed, emitted obj.Buffer
	require.NoError(t, e.Flush(&flushed))
	require.NoError(t, g.Emit(&emitted))
	assert.Empty(t, e.Pending())
	assert.Equal(t, int64(4*len(cases)), flushed.PC())

	if diff := cmp.Diff(want, flushed.Words()); diff != "" {
		t.Errorf("flushed words mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(flushed.Bytes(), emitted.Bytes()); diff != "" {
		t.Errorf("group emission differs from flush (-flush +emit):\n%s", diff)
	}

	listing, err := g.Listing()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(listing, "\n"), "\n")
	require.Len(t, lines, len(cases))
	for i, c := range cases {
		assert.Equal(t, fmt.Sprintf("%08x  %s", c.Word, c.Asm), lines[i])
	}
}
