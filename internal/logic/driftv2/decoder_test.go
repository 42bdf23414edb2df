package driftv2

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"

	"drift-indexer-sol/internal/consts"

	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func nameBytes(s string) [32]byte {
	var out [32]byte
	copy(out[:], s)
	return out
}

func sampleOrderParams() OrderParams {
	return OrderParams{
		OrderType:         OrderTypeLimit,
		MarketType:        MarketTypePerp,
		Direction:         PositionDirectionShort,
		UserOrderID:       3,
		BaseAssetAmount:   1_000_000_000,
		Price:             21_500_000,
		MarketIndex:       1,
		ReduceOnly:        false,
		PostOnly:          PostOnlyMustPostOnly,
		ImmediateOrCancel: true,
		MaxTs:             ptr[int64](1_700_000_000),
		TriggerCondition:  TriggerBelow,
		OraclePriceOffset: ptr[int32](-5000),
		AuctionStartPrice: ptr[int64](-1),
	}
}

func sampleModifyOrderParams() ModifyOrderParams {
	return ModifyOrderParams{
		Direction:       ptr(PositionDirectionLong),
		BaseAssetAmount: ptr[uint64](500),
		ReduceOnly:      ptr(true),
		TriggerPrice:    ptr[uint64](0),
		AuctionDuration: ptr[uint8](10),
		Policy:          ptr(ModifyOrderPolicyMustModify),
	}
}

// sampleInstructions 每个已登记变体一个样例，切片字段均非空
func sampleInstructions() []Instruction {
	return []Instruction{
		&InitializeUserArgs{SubAccountID: 1, NameBytes: nameBytes("main")},
		&InitializeUserStatsArgs{},
		&InitializeReferrerNameArgs{NameBytes: nameBytes("main")},
		&DepositArgs{MarketIndex: 4, Amount: 1<<40 + 4, ReduceOnly: true},
		&WithdrawArgs{MarketIndex: 5, Amount: 1<<40 + 5, ReduceOnly: true},
		&TransferDepositArgs{MarketIndex: 6, Amount: 1<<40 + 6},
		&PlacePerpOrderArgs{Params: sampleOrderParams()},
		&CancelOrderArgs{OrderID: ptr[uint32](42)},
		&CancelOrderByUserIdArgs{UserOrderID: 7},
		&CancelOrdersArgs{MarketType: ptr(MarketTypeSpot), Direction: ptr(PositionDirectionShort)},
		&CancelOrdersByIdsArgs{OrderIDs: []uint32{1, 2, 3}},
		&ModifyOrderArgs{OrderID: ptr[uint32](42), ModifyOrderParams: sampleModifyOrderParams()},
		&ModifyOrderByUserIdArgs{UserOrderID: 7, ModifyOrderParams: sampleModifyOrderParams()},
		&PlaceAndTakePerpOrderArgs{Params: sampleOrderParams(), MakerOrderID: ptr[uint32](42)},
		&PlaceAndMakePerpOrderArgs{Params: sampleOrderParams(), TakerOrderID: 70000},
		&PlaceSpotOrderArgs{Params: sampleOrderParams()},
		&PlaceAndTakeSpotOrderArgs{Params: sampleOrderParams(), FulfillmentType: ptr(SpotFulfillmentMatch)},
		&PlaceAndMakeSpotOrderArgs{Params: sampleOrderParams(), TakerOrderID: 70000, FulfillmentType: ptr(SpotFulfillmentMatch)},
		&PlaceOrdersArgs{Params: []OrderParams{sampleOrderParams(), sampleOrderParams()}},
		&BeginSwapArgs{InMarketIndex: 20, OutMarketIndex: 20, AmountIn: 1<<40 + 20},
		&EndSwapArgs{InMarketIndex: 21, OutMarketIndex: 21, LimitPrice: ptr[uint64](123456)},
		&AddPerpLpSharesArgs{NShares: 1<<40 + 22, MarketIndex: 22},
		&RemovePerpLpSharesArgs{SharesToBurn: 1<<40 + 23, MarketIndex: 23},
		&RemovePerpLpSharesInExpiringMarketArgs{SharesToBurn: 1<<40 + 24, MarketIndex: 24},
		&UpdateUserNameArgs{SubAccountID: 25, NameBytes: nameBytes("main")},
		&UpdateUserCustomMarginRatioArgs{SubAccountID: 26, MarginRatio: 70000},
		&UpdateUserMarginTradingEnabledArgs{SubAccountID: 27, MarginTradingEnabled: true},
		&UpdateUserDelegateArgs{SubAccountID: 28, Delegate: consts.DriftV2Program},
		&UpdateUserReduceOnlyArgs{SubAccountID: 29, ReduceOnly: true},
		&UpdateUserAdvancedLpArgs{SubAccountID: 30, AdvancedLp: true},
		&DeleteUserArgs{},
		&ReclaimRentArgs{},
		&FillPerpOrderArgs{OrderID: ptr[uint32](42)},
		&RevertFillArgs{},
		&FillSpotOrderArgs{OrderID: ptr[uint32](42), MakerOrderID: ptr[uint32](42)},
		&TriggerOrderArgs{OrderID: 70000},
		&ForceCancelOrdersArgs{},
		&UpdateUserIdleArgs{},
		&UpdateUserOpenOrdersCountArgs{},
		&SettlePnlArgs{MarketIndex: 40},
		&SettleMultiplePnlsArgs{MarketIndexes: []uint16{0, 1, 5}, Mode: SettlePnlTrySettle},
		&SettleFundingPaymentArgs{},
		&SettleLpArgs{MarketIndex: 43},
		&SettleExpiredMarketArgs{MarketIndex: 44},
		&LiquidatePerpArgs{MarketIndex: 45, LiquidatorMaxBaseAssetAmount: 1<<40 + 45, LimitPrice: ptr[uint64](123456)},
		&LiquidateSpotArgs{AssetMarketIndex: 46, LiabilityMarketIndex: 46, LiquidatorMaxLiabilityTransfer: Uint128{Lo: 1 << 63, Hi: 9}, LimitPrice: ptr[uint64](123456)},
		&LiquidateBorrowForPerpPnlArgs{PerpMarketIndex: 47, SpotMarketIndex: 47, LiquidatorMaxLiabilityTransfer: Uint128{Lo: 1 << 63, Hi: 9}, LimitPrice: ptr[uint64](123456)},
		&LiquidatePerpPnlForDepositArgs{PerpMarketIndex: 48, SpotMarketIndex: 48, LiquidatorMaxPnlTransfer: Uint128{Lo: 1 << 63, Hi: 9}, LimitPrice: ptr[uint64](123456)},
		&ResolvePerpPnlDeficitArgs{SpotMarketIndex: 49, PerpMarketIndex: 49},
		&ResolvePerpBankruptcyArgs{QuoteSpotMarketIndex: 50, MarketIndex: 50},
		&ResolveSpotBankruptcyArgs{MarketIndex: 51},
		&SettleRevenueToInsuranceFundArgs{SpotMarketIndex: 52},
		&UpdateFundingRateArgs{MarketIndex: 53},
		&UpdatePrelaunchOracleArgs{},
		&UpdatePerpBidAskTwapArgs{},
		&UpdateSpotMarketCumulativeInterestArgs{},
		&UpdateAmmsArgs{MarketIndexes: [5]uint16{1, 2, 3, 4, 5}},
		&UpdateUserQuoteAssetInsuranceStakeArgs{},
		&InitializeInsuranceFundStakeArgs{MarketIndex: 59},
		&AddInsuranceFundStakeArgs{MarketIndex: 60, Amount: 1<<40 + 60},
		&RequestRemoveInsuranceFundStakeArgs{MarketIndex: 61, Amount: 1<<40 + 61},
		&CancelRequestRemoveInsuranceFundStakeArgs{MarketIndex: 62},
		&RemoveInsuranceFundStakeArgs{MarketIndex: 63},
		&DepositIntoSpotMarketRevenuePoolArgs{Amount: 1<<40 + 64},
	}
}

func TestCatalog(t *testing.T) {
	t.Run("discriminator 与 Anchor sighash 一致", func(t *testing.T) {
		ds := Discriminators()
		require.Len(t, ds, 64)
		for _, d := range ds {
			want := binary.BigEndian.Uint64(bin.Sighash(bin.SIGHASH_GLOBAL_NAMESPACE, d.String()))
			assert.Equal(t, want, uint64(d), d.String())
		}
	})

	t.Run("样例覆盖全部变体", func(t *testing.T) {
		seen := map[Discriminator]bool{}
		for _, ix := range sampleInstructions() {
			assert.False(t, seen[ix.Discriminator()], "重复样例: %s", ix.Name())
			seen[ix.Discriminator()] = true
		}
		assert.Len(t, seen, len(catalog))
	})

	t.Run("名称", func(t *testing.T) {
		assert.Equal(t, "deposit", (&DepositArgs{}).Name())
		assert.Equal(t, "place_and_take_perp_order", PlaceAndTakePerpOrder.String())
		assert.Equal(t, "unknown(0x0000000000000001)", Discriminator(1).String())
		assert.False(t, Discriminator(1).Known())
	})

	t.Run("重复注册 panic", func(t *testing.T) {
		assert.Panics(t, func() {
			register(Deposit, "deposit_again", func() Instruction { return new(DepositArgs) })
		})
	})
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, ix := range sampleInstructions() {
		ix := ix
		t.Run(ix.Name(), func(t *testing.T) {
			data, err := Encode(ix)
			require.NoError(t, err)

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, ix, got)
			assert.IsType(t, ix, got)
		})
	}
}

func TestDecode_WireLayout(t *testing.T) {
	t.Run("deposit 字节布局", func(t *testing.T) {
		data, err := Encode(&DepositArgs{MarketIndex: 1, Amount: 1_000_000, ReduceOnly: false})
		require.NoError(t, err)
		assert.Equal(t, "f223c68952e1f2b6"+"0100"+"40420f0000000000"+"00", hex.EncodeToString(data))
	})

	t.Run("Option None 仅占 1 字节", func(t *testing.T) {
		data, err := Encode(&CancelOrderArgs{})
		require.NoError(t, err)
		assert.Equal(t, "5f81edf00831df84"+"00", hex.EncodeToString(data))

		ix, err := Decode(data)
		require.NoError(t, err)
		assert.Nil(t, ix.(*CancelOrderArgs).OrderID)
	})

	t.Run("Option Some", func(t *testing.T) {
		data := mustHex(t, "5f81edf00831df84"+"01"+"2a000000")
		ix, err := Decode(data)
		require.NoError(t, err)
		require.NotNil(t, ix.(*CancelOrderArgs).OrderID)
		assert.Equal(t, uint32(42), *ix.(*CancelOrderArgs).OrderID)
	})

	t.Run("u128 低位在前", func(t *testing.T) {
		data, err := Encode(&LiquidateSpotArgs{
			AssetMarketIndex:               0,
			LiabilityMarketIndex:           1,
			LiquidatorMaxLiabilityTransfer: Uint128{Lo: 2, Hi: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "6b00802923e5fb12"+"0000"+"0100"+"0200000000000000"+"0100000000000000"+"00", hex.EncodeToString(data))
	})

	t.Run("名称字段与 Name() 并存", func(t *testing.T) {
		args := &UpdateUserNameArgs{SubAccountID: 2, NameBytes: nameBytes("main")}
		data, err := Encode(args)
		require.NoError(t, err)
		require.Len(t, data, 8+2+32)
		assert.Equal(t, []byte("main"), data[10:14])

		ix, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "update_user_name", ix.Name())
		assert.Equal(t, nameBytes("main"), ix.(*UpdateUserNameArgs).NameBytes)
	})

	t.Run("空 Vec 解码为 nil", func(t *testing.T) {
		data := mustHex(t, "861390a55ef0d25e"+"00000000")
		ix, err := Decode(data)
		require.NoError(t, err)
		assert.Empty(t, ix.(*CancelOrdersByIdsArgs).OrderIDs)
	})
}

func TestDecode_Errors(t *testing.T) {
	depositHex := "f223c68952e1f2b6" + "0100" + "40420f0000000000" + "00"

	t.Run("数据不足 8 字节", func(t *testing.T) {
		for _, data := range [][]byte{nil, {}, {1, 2, 3, 4, 5, 6, 7}} {
			_, err := Decode(data)
			assert.ErrorIs(t, err, ErrInvalidEncoding)
		}
	})

	t.Run("未知 discriminator 保留原值", func(t *testing.T) {
		_, err := Decode(mustHex(t, "0102030405060708ff"))
		require.ErrorIs(t, err, ErrUnknownInstruction)

		var unknown *UnknownInstructionError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, Discriminator(0x0102030405060708), unknown.Discriminator)
	})

	t.Run("多余字节", func(t *testing.T) {
		_, err := Decode(mustHex(t, depositHex+"00"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("截断", func(t *testing.T) {
		_, err := Decode(mustHex(t, depositHex[:len(depositHex)-2]))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("无参数指令带负载", func(t *testing.T) {
		_, err := Decode(mustHex(t, "ba5511f9dbe762fb"))
		require.NoError(t, err)

		_, err = Decode(mustHex(t, "ba5511f9dbe762fb"+"00"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("枚举越界", func(t *testing.T) {
		// settle_multiple_pnls: Vec<u16>{1}, mode=2
		_, err := Decode(mustHex(t, "7f4275392832987f"+"01000000"+"0100"+"02"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)

		_, err = Decode(mustHex(t, "7f4275392832987f"+"01000000"+"0100"+"01"))
		assert.NoError(t, err)
	})

	t.Run("嵌套 OrderParams 枚举越界", func(t *testing.T) {
		p := sampleOrderParams()
		p.PostOnly = PostOnlyParam(9)
		data, err := Encode(&PlacePerpOrderArgs{Params: p})
		require.NoError(t, err)

		_, err = Decode(data)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("非规范 bool", func(t *testing.T) {
		_, err := Decode(mustHex(t, depositHex[:len(depositHex)-2]+"02"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("非规范 Option 标志", func(t *testing.T) {
		_, err := Decode(mustHex(t, "5f81edf00831df84"+"02"+"2a000000"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("Vec 长度超出剩余数据", func(t *testing.T) {
		_, err := Decode(mustHex(t, "861390a55ef0d25e"+"ffffffff"+"01000000"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestUint128_String(t *testing.T) {
	assert.Equal(t, "0", Uint128{}.String())
	assert.Equal(t, "18446744073709551618", Uint128{Lo: 2, Hi: 1}.String())

	text, err := Uint128{Lo: 7}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "7", string(text))
}
