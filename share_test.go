package hunter

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleSector() Sector {
	return Sector{
		ID:                 "thermal_mgmt",
		Name:               "散熱族群",
		Phase:              Climax,
		RotationRisk:       35,
		MarketCorrelation:  0.72,
		TotalChangePercent: 4.2,
		Stocks: []Stock{
			{
				ID: "3017", Name: "奇鋐", Price: 850, Change: 12.5, ChangePercent: 1.49,
				Volume: "22.0K", IsLeader: true, VolumeRatio: 1.8, ConfidenceScore: 88,
				DistributionRisk: 15, HunterScore: 91, SupportPrice: 807.5, ResistancePrice: 892.5,
				LastUpdated: "10:31:02", IsRealData: true,
			},
			{
				ID: "3324", Name: "雙鴻", Price: 620, Change: -4, ChangePercent: -0.64,
				Volume: "8.3K", VolumeRatio: 0.9, ConfidenceScore: 70,
				DistributionRisk: 10, HunterScore: 75, SupportPrice: 589, ResistancePrice: 651,
			},
		},
	}
}

func TestSectorShareRoundTrip(t *testing.T) {
	want := sampleSector()

	token, err := EncodeSector(want)
	if err != nil {
		t.Fatalf("EncodeSector() = %v", err)
	}
	got, err := DecodeSector(token)
	if err != nil {
		t.Fatalf("DecodeSector() = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestShareURLRoundTrip(t *testing.T) {
	want := sampleSector()

	link, err := ShareURL("https://hunter.local/", want)
	if err != nil {
		t.Fatalf("ShareURL() = %v", err)
	}
	if !strings.Contains(link, "strategy=") {
		t.Fatalf("ShareURL() = %q, missing strategy parameter", link)
	}

	got, err := SectorFromShareURL(link)
	if err != nil {
		t.Fatalf("SectorFromShareURL() = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestDecodeSectorMalformed(t *testing.T) {
	tokens := map[string]string{
		"not base64":   "%%%%not-base64%%%%",
		"bad escaping": base64.StdEncoding.EncodeToString([]byte("%zz")),
		"not json":     base64.StdEncoding.EncodeToString([]byte("hello world")),
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSector(token)
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("DecodeSector() = %v, want a *DecodeError", err)
			}
			if derr.Kind != DecodeMalformed {
				t.Errorf("kind = %v, want malformed", derr.Kind)
			}
		})
	}
}

func TestDecodeSectorBadShape(t *testing.T) {
	tokens := map[string]string{
		"json array":    base64.StdEncoding.EncodeToString([]byte("[]")),
		"empty object":  base64.StdEncoding.EncodeToString([]byte("{}")),
		"unknown phase": base64.StdEncoding.EncodeToString([]byte(`{"id":"x","name":"y","phase":"Sideways"}`)),
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSector(token)
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("DecodeSector() = %v, want a *DecodeError", err)
			}
			if derr.Kind != DecodeBadShape {
				t.Errorf("kind = %v, want bad shape", derr.Kind)
			}
		})
	}
}

func TestBackupRoundTrip(t *testing.T) {
	want := []Sector{sampleSector()}

	data, err := EncodeBackup(want)
	if err != nil {
		t.Fatalf("EncodeBackup() = %v", err)
	}
	got, err := DecodeBackup(data)
	if err != nil {
		t.Fatalf("DecodeBackup() = %v", err)
	}
	if len(got) != len(want) || !got[0].Equal(want[0]) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestDecodeBackupEmptyArray(t *testing.T) {
	got, err := DecodeBackup([]byte("[]"))
	if err != nil {
		t.Fatalf("DecodeBackup(\"[]\") = %v, want an empty collection", err)
	}
	if len(got) != 0 {
		t.Errorf("DecodeBackup(\"[]\") = %+v, want no sectors", got)
	}
}

func TestDecodeBackupRejectsObject(t *testing.T) {
	if _, err := DecodeBackup([]byte(`{"id":"x"}`)); err == nil {
		t.Error("DecodeBackup() accepted a JSON object, want an array only")
	}
}

func TestEncodeBackupEmpty(t *testing.T) {
	data, err := EncodeBackup(nil)
	if err != nil {
		t.Fatalf("EncodeBackup(nil) = %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("EncodeBackup(nil) = %q, want an empty array", data)
	}
}

func TestBackupFilename(t *testing.T) {
	d := time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)
	if got, want := BackupFilename(d), "Hunter_Backup_2026-08-30.json"; got != want {
		t.Errorf("BackupFilename() = %q, want %q", got, want)
	}
}

func TestQRImageURL(t *testing.T) {
	got := QRImageURL("https://hunter.local/?strategy=abc")
	if !strings.HasPrefix(got, "https://api.qrserver.com/v1/create-qr-code/") {
		t.Errorf("QRImageURL() = %q, unexpected host", got)
	}
	if !strings.Contains(got, "data=") {
		t.Errorf("QRImageURL() = %q, missing data parameter", got)
	}
}

func TestPercentEncodeMatchesURIComponent(t *testing.T) {
	// encodeURIComponent leaves A-Za-z0-9 - _ . ! ~ * ' ( ) untouched and
	// escapes everything else with uppercase hex.
	got := percentEncode([]byte("a Z9-_.!~*'() /+="))
	want := "a%20Z9-_.!~*'()%20%2F%2B%3D"
	if got != want {
		t.Errorf("percentEncode() = %q, want %q", got, want)
	}
}
