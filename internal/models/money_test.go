package models

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr bool
	}{
		{name: "two decimals", input: "20.00", want: 2000},
		{name: "comma separator", input: "5,50", want: 550},
		{name: "one decimal", input: "5.5", want: 550},
		{name: "no decimals", input: "12", want: 1200},
		{name: "zero", input: "0", want: 0},
		{name: "leading separator", input: ".50", want: 50},
		{name: "negative", input: "-1.25", want: -125},
		{name: "whitespace", input: " 3.00 ", want: 300},
		{name: "empty", input: "", wantErr: true},
		{name: "three decimals", input: "1.005", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCentsFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount Cents
		symbol string
		sep    string
		want   string
	}{
		{name: "euro comma", amount: 5500, symbol: "€", sep: ",", want: "€ 55,00"},
		{name: "cents only", amount: 5, symbol: "€", sep: ",", want: "€ 0,05"},
		{name: "zero", amount: 0, symbol: "€", sep: ",", want: "€ 0,00"},
		{name: "dollar dot", amount: 1999, symbol: "$", sep: ".", want: "$ 19.99"},
		{name: "negative", amount: -250, symbol: "€", sep: ",", want: "-€ 2,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.amount.Format(tt.symbol, tt.sep); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
