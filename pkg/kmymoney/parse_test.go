package kmymoney

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE KMYMONEY-FILE>
<KMYMONEY-FILE>
 <FILEINFO>
  <CREATION_DATE date="2019-03-01" />
 </FILEINFO>
 <KEYVALUEPAIRS>
  <PAIR key="kmm-baseCurrency" value="EUR" />
 </KEYVALUEPAIRS>
 <ACCOUNTS count="2">
  <ACCOUNT id="A000001" name="Asset" parentaccount="" currency="EUR" type="9" opened="" lastmodified="2023-01-01" />
  <ACCOUNT id="A000002" name="Checking" parentaccount="A000001" currency="EUR" type="1" opened="2019-03-01" lastmodified="2023-05-01">
   <KEYVALUEPAIRS>
    <PAIR key="mm-closed" value="yes" />
   </KEYVALUEPAIRS>
   <SUBACCOUNTS />
  </ACCOUNT>
 </ACCOUNTS>
 <PAYEES count="1">
  <PAYEE id="P000001" name="Landlord" matchingenabled="0" />
 </PAYEES>
 <TAGS count="1">
  <TAG id="G000001" name="Rent" tagcolor="#000000" />
 </TAGS>
 <TRANSACTIONS count="1">
  <TRANSACTION id="T000001" postdate="2023-01-05" commodity="EUR" memo="" entrydate="2023-01-06">
   <SPLITS>
    <SPLIT id="S0001" account="A000002" payee="P000001" value="-90000/100" shares="-90000/100" price="1/1" memo="January" reconcileflag="2">
     <TAG id="G000001" />
    </SPLIT>
    <SPLIT id="S0002" account="A000001" payee="" value="90000/100" shares="90000/100" price="1/1" memo="" reconcileflag="0" />
   </SPLITS>
  </TRANSACTION>
 </TRANSACTIONS>
 <PRICES count="1">
  <PRICEPAIR from="USD" to="EUR">
   <PRICE price="92/100" date="2023-01-02" source="KMyMoney" />
  </PRICEPAIR>
 </PRICES>
</KMYMONEY-FILE>
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	base, ok := f.BaseCurrency()
	require.True(t, ok)
	assert.Equal(t, "EUR", base)

	require.Len(t, f.Accounts, 2)
	root := f.Accounts[0]
	assert.Equal(t, "A000001", root.ID)
	assert.Equal(t, "Asset", root.Name)
	assert.Empty(t, root.ParentAccount)
	assert.Equal(t, 9, root.Type)
	assert.False(t, root.Closed())

	checking := f.Accounts[1]
	assert.Equal(t, "A000001", checking.ParentAccount)
	assert.Equal(t, "2019-03-01", checking.Opened)
	assert.Equal(t, "2023-05-01", checking.LastModified)
	assert.True(t, checking.Closed())

	require.Len(t, f.Payees, 1)
	assert.Equal(t, "Landlord", f.Payees[0].Name)

	require.Len(t, f.Tags, 1)
	assert.Equal(t, "Rent", f.Tags[0].Name)

	require.Len(t, f.Transactions, 1)
	txn := f.Transactions[0]
	assert.Equal(t, "T000001", txn.ID)
	assert.Equal(t, "2023-01-05", txn.PostDate)
	assert.Equal(t, "EUR", txn.Commodity)

	require.Len(t, txn.Splits, 2)
	first := txn.Splits[0]
	assert.Equal(t, "A000002", first.Account)
	assert.Equal(t, "P000001", first.Payee)
	assert.Equal(t, "-90000/100", first.Value)
	assert.Equal(t, "-90000/100", first.Shares)
	assert.Equal(t, "1/1", first.Price)
	assert.Equal(t, "January", first.Memo)
	require.Len(t, first.Tags, 1)
	assert.Equal(t, "G000001", first.Tags[0].ID)

	require.Len(t, f.PricePairs, 1)
	pair := f.PricePairs[0]
	assert.Equal(t, "USD", pair.From)
	assert.Equal(t, "EUR", pair.To)
	require.Len(t, pair.Prices, 1)
	assert.Equal(t, "92/100", pair.Prices[0].Value)
	assert.Equal(t, "KMyMoney", pair.Prices[0].Source)
}

func TestParseInvalidXML(t *testing.T) {
	_, err := Parse(strings.NewReader("<KMYMONEY-FILE><ACCOUNTS>"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.xml")
	require.Error(t, err)
}

func TestKeyValuePairsGet(t *testing.T) {
	kv := KeyValuePairs{Pairs: []Pair{{Key: "a", Value: "1"}, {Key: "b", Value: ""}}}

	v, ok := kv.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = kv.Get("b")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = kv.Get("missing")
	assert.False(t, ok)
}
