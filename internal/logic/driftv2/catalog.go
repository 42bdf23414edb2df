package driftv2

import "fmt"

// Instruction 已解码的 Drift v2 指令，具体类型为各 *XxxArgs，调用方用 type switch 区分
type Instruction interface {
	Discriminator() Discriminator
	Name() string
}

// validator 含枚举字段的变体在解码后做取值范围校验
type validator interface {
	validate() error
}

type catalogEntry struct {
	name    string
	newArgs func() Instruction
}

// catalog discriminator → 指令名与构造函数，init 时建立，之后只读
var catalog = map[Discriminator]catalogEntry{}

func register(d Discriminator, name string, newArgs func() Instruction) {
	if prev, ok := catalog[d]; ok {
		panic(fmt.Sprintf("driftv2: duplicate discriminator 0x%016x: %s vs %s", uint64(d), prev.name, name))
	}
	catalog[d] = catalogEntry{name: name, newArgs: newArgs}
}

func init() {
	for _, e := range []struct {
		d       Discriminator
		name    string
		newArgs func() Instruction
	}{
		{InitializeUser, "initialize_user", func() Instruction { return new(InitializeUserArgs) }},
		{InitializeUserStats, "initialize_user_stats", func() Instruction { return new(InitializeUserStatsArgs) }},
		{InitializeReferrerName, "initialize_referrer_name", func() Instruction { return new(InitializeReferrerNameArgs) }},
		{Deposit, "deposit", func() Instruction { return new(DepositArgs) }},
		{Withdraw, "withdraw", func() Instruction { return new(WithdrawArgs) }},
		{TransferDeposit, "transfer_deposit", func() Instruction { return new(TransferDepositArgs) }},
		{PlacePerpOrder, "place_perp_order", func() Instruction { return new(PlacePerpOrderArgs) }},
		{CancelOrder, "cancel_order", func() Instruction { return new(CancelOrderArgs) }},
		{CancelOrderByUserId, "cancel_order_by_user_id", func() Instruction { return new(CancelOrderByUserIdArgs) }},
		{CancelOrders, "cancel_orders", func() Instruction { return new(CancelOrdersArgs) }},
		{CancelOrdersByIds, "cancel_orders_by_ids", func() Instruction { return new(CancelOrdersByIdsArgs) }},
		{ModifyOrder, "modify_order", func() Instruction { return new(ModifyOrderArgs) }},
		{ModifyOrderByUserId, "modify_order_by_user_id", func() Instruction { return new(ModifyOrderByUserIdArgs) }},
		{PlaceAndTakePerpOrder, "place_and_take_perp_order", func() Instruction { return new(PlaceAndTakePerpOrderArgs) }},
		{PlaceAndMakePerpOrder, "place_and_make_perp_order", func() Instruction { return new(PlaceAndMakePerpOrderArgs) }},
		{PlaceSpotOrder, "place_spot_order", func() Instruction { return new(PlaceSpotOrderArgs) }},
		{PlaceAndTakeSpotOrder, "place_and_take_spot_order", func() Instruction { return new(PlaceAndTakeSpotOrderArgs) }},
		{PlaceAndMakeSpotOrder, "place_and_make_spot_order", func() Instruction { return new(PlaceAndMakeSpotOrderArgs) }},
		{PlaceOrders, "place_orders", func() Instruction { return new(PlaceOrdersArgs) }},
		{BeginSwap, "begin_swap", func() Instruction { return new(BeginSwapArgs) }},
		{EndSwap, "end_swap", func() Instruction { return new(EndSwapArgs) }},
		{AddPerpLpShares, "add_perp_lp_shares", func() Instruction { return new(AddPerpLpSharesArgs) }},
		{RemovePerpLpShares, "remove_perp_lp_shares", func() Instruction { return new(RemovePerpLpSharesArgs) }},
		{RemovePerpLpSharesInExpiringMarket, "remove_perp_lp_shares_in_expiring_market", func() Instruction { return new(RemovePerpLpSharesInExpiringMarketArgs) }},
		{UpdateUserName, "update_user_name", func() Instruction { return new(UpdateUserNameArgs) }},
		{UpdateUserCustomMarginRatio, "update_user_custom_margin_ratio", func() Instruction { return new(UpdateUserCustomMarginRatioArgs) }},
		{UpdateUserMarginTradingEnabled, "update_user_margin_trading_enabled", func() Instruction { return new(UpdateUserMarginTradingEnabledArgs) }},
		{UpdateUserDelegate, "update_user_delegate", func() Instruction { return new(UpdateUserDelegateArgs) }},
		{UpdateUserReduceOnly, "update_user_reduce_only", func() Instruction { return new(UpdateUserReduceOnlyArgs) }},
		{UpdateUserAdvancedLp, "update_user_advanced_lp", func() Instruction { return new(UpdateUserAdvancedLpArgs) }},
		{DeleteUser, "delete_user", func() Instruction { return new(DeleteUserArgs) }},
		{ReclaimRent, "reclaim_rent", func() Instruction { return new(ReclaimRentArgs) }},
		{FillPerpOrder, "fill_perp_order", func() Instruction { return new(FillPerpOrderArgs) }},
		{RevertFill, "revert_fill", func() Instruction { return new(RevertFillArgs) }},
		{FillSpotOrder, "fill_spot_order", func() Instruction { return new(FillSpotOrderArgs) }},
		{TriggerOrder, "trigger_order", func() Instruction { return new(TriggerOrderArgs) }},
		{ForceCancelOrders, "force_cancel_orders", func() Instruction { return new(ForceCancelOrdersArgs) }},
		{UpdateUserIdle, "update_user_idle", func() Instruction { return new(UpdateUserIdleArgs) }},
		{UpdateUserOpenOrdersCount, "update_user_open_orders_count", func() Instruction { return new(UpdateUserOpenOrdersCountArgs) }},
		{SettlePnl, "settle_pnl", func() Instruction { return new(SettlePnlArgs) }},
		{SettleMultiplePnls, "settle_multiple_pnls", func() Instruction { return new(SettleMultiplePnlsArgs) }},
		{SettleFundingPayment, "settle_funding_payment", func() Instruction { return new(SettleFundingPaymentArgs) }},
		{SettleLp, "settle_lp", func() Instruction { return new(SettleLpArgs) }},
		{SettleExpiredMarket, "settle_expired_market", func() Instruction { return new(SettleExpiredMarketArgs) }},
		{LiquidatePerp, "liquidate_perp", func() Instruction { return new(LiquidatePerpArgs) }},
		{LiquidateSpot, "liquidate_spot", func() Instruction { return new(LiquidateSpotArgs) }},
		{LiquidateBorrowForPerpPnl, "liquidate_borrow_for_perp_pnl", func() Instruction { return new(LiquidateBorrowForPerpPnlArgs) }},
		{LiquidatePerpPnlForDeposit, "liquidate_perp_pnl_for_deposit", func() Instruction { return new(LiquidatePerpPnlForDepositArgs) }},
		{ResolvePerpPnlDeficit, "resolve_perp_pnl_deficit", func() Instruction { return new(ResolvePerpPnlDeficitArgs) }},
		{ResolvePerpBankruptcy, "resolve_perp_bankruptcy", func() Instruction { return new(ResolvePerpBankruptcyArgs) }},
		{ResolveSpotBankruptcy, "resolve_spot_bankruptcy", func() Instruction { return new(ResolveSpotBankruptcyArgs) }},
		{SettleRevenueToInsuranceFund, "settle_revenue_to_insurance_fund", func() Instruction { return new(SettleRevenueToInsuranceFundArgs) }},
		{UpdateFundingRate, "update_funding_rate", func() Instruction { return new(UpdateFundingRateArgs) }},
		{UpdatePrelaunchOracle, "update_prelaunch_oracle", func() Instruction { return new(UpdatePrelaunchOracleArgs) }},
		{UpdatePerpBidAskTwap, "update_perp_bid_ask_twap", func() Instruction { return new(UpdatePerpBidAskTwapArgs) }},
		{UpdateSpotMarketCumulativeInterest, "update_spot_market_cumulative_interest", func() Instruction { return new(UpdateSpotMarketCumulativeInterestArgs) }},
		{UpdateAmms, "update_amms", func() Instruction { return new(UpdateAmmsArgs) }},
		{UpdateUserQuoteAssetInsuranceStake, "update_user_quote_asset_insurance_stake", func() Instruction { return new(UpdateUserQuoteAssetInsuranceStakeArgs) }},
		{InitializeInsuranceFundStake, "initialize_insurance_fund_stake", func() Instruction { return new(InitializeInsuranceFundStakeArgs) }},
		{AddInsuranceFundStake, "add_insurance_fund_stake", func() Instruction { return new(AddInsuranceFundStakeArgs) }},
		{RequestRemoveInsuranceFundStake, "request_remove_insurance_fund_stake", func() Instruction { return new(RequestRemoveInsuranceFundStakeArgs) }},
		{CancelRequestRemoveInsuranceFundStake, "cancel_request_remove_insurance_fund_stake", func() Instruction { return new(CancelRequestRemoveInsuranceFundStakeArgs) }},
		{RemoveInsuranceFundStake, "remove_insurance_fund_stake", func() Instruction { return new(RemoveInsuranceFundStakeArgs) }},
		{DepositIntoSpotMarketRevenuePool, "deposit_into_spot_market_revenue_pool", func() Instruction { return new(DepositIntoSpotMarketRevenuePoolArgs) }},
	} {
		register(e.d, e.name, e.newArgs)
	}
}

// String 返回 Anchor 指令名，未登记时返回十六进制
func (d Discriminator) String() string {
	if e, ok := catalog[d]; ok {
		return e.name
	}
	return fmt.Sprintf("unknown(0x%016x)", uint64(d))
}

// Known 判断 discriminator 是否已登记
func (d Discriminator) Known() bool {
	_, ok := catalog[d]
	return ok
}

// Discriminators 返回全部已登记的 discriminator（无序）
func Discriminators() []Discriminator {
	result := make([]Discriminator, 0, len(catalog))
	for d := range catalog {
		result = append(result, d)
	}
	return result
}
