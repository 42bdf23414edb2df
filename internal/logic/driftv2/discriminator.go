package driftv2

// Discriminator Anchor 指令前 8 字节，按大端读为 uint64
// 取值为 sha256("global:<snake_name>")[:8]
type Discriminator uint64

const (
	InitializeUser                        Discriminator = 0x6f11b9fa3c7a26fe
	InitializeUserStats                   Discriminator = 0xfef34862fb82a8d5
	InitializeReferrerName                Discriminator = 0xeb7ee70a2aa41a3d
	Deposit                               Discriminator = 0xf223c68952e1f2b6
	Withdraw                              Discriminator = 0xb712469c946da122
	TransferDeposit                       Discriminator = 0x141493df293fcc6f
	PlacePerpOrder                        Discriminator = 0x45a15dca787e4cb9
	CancelOrder                           Discriminator = 0x5f81edf00831df84
	CancelOrderByUserId                   Discriminator = 0x6bd3fa8512253964
	CancelOrders                          Discriminator = 0xeee15f9ee36708c2
	CancelOrdersByIds                     Discriminator = 0x861390a55ef0d25e
	ModifyOrder                           Discriminator = 0x2f7c75ffc9c5825e
	ModifyOrderByUserId                   Discriminator = 0x9e4d04fdfcc2a1b3
	PlaceAndTakePerpOrder                 Discriminator = 0xd53301bb6cdce6e0
	PlaceAndMakePerpOrder                 Discriminator = 0x95750bed2f5f59ed
	PlaceSpotOrder                        Discriminator = 0x2d4f51a0f85a5bdc
	PlaceAndTakeSpotOrder                 Discriminator = 0xbf038a4772c6ca64
	PlaceAndMakeSpotOrder                 Discriminator = 0x959e5542ef09f362
	PlaceOrders                           Discriminator = 0x3c3f327b0cc53cbe
	BeginSwap                             Discriminator = 0xae6de401f269e869
	EndSwap                               Discriminator = 0xb1b81bc1220dd291
	AddPerpLpShares                       Discriminator = 0x38d138c577febc75
	RemovePerpLpShares                    Discriminator = 0xd559d912a037358d
	RemovePerpLpSharesInExpiringMarket    Discriminator = 0x53fefd893b7a449c
	UpdateUserName                        Discriminator = 0x8719b938a5352288
	UpdateUserCustomMarginRatio           Discriminator = 0x15dd8cbb20810b7b
	UpdateUserMarginTradingEnabled        Discriminator = 0xc25cccdff6bc1fcb
	UpdateUserDelegate                    Discriminator = 0x8bcd8d8d71245ebb
	UpdateUserReduceOnly                  Discriminator = 0xc7472a439013566d
	UpdateUserAdvancedLp                  Discriminator = 0x42506bba1bf2425f
	DeleteUser                            Discriminator = 0xba5511f9dbe762fb
	ReclaimRent                           Discriminator = 0xdac813c5e359c016
	FillPerpOrder                         Discriminator = 0x0dbcf86786d96af0
	RevertFill                            Discriminator = 0xeceeb045ef0ab5c1
	FillSpotOrder                         Discriminator = 0xd4ce82ad1522c728
	TriggerOrder                          Discriminator = 0x3f7033e9e82ff0c7
	ForceCancelOrders                     Discriminator = 0x40b5c43fde4840e8
	UpdateUserIdle                        Discriminator = 0xfd85431667a11464
	UpdateUserOpenOrdersCount             Discriminator = 0x682741d2faa36486
	SettlePnl                             Discriminator = 0x2b3dea2d0f5f9899
	SettleMultiplePnls                    Discriminator = 0x7f4275392832987f
	SettleFundingPayment                  Discriminator = 0xde5aca5e1c2d73b7
	SettleLp                              Discriminator = 0x9be7747161e58b8d
	SettleExpiredMarket                   Discriminator = 0x78590b197a4d48c1
	LiquidatePerp                         Discriminator = 0x4b2377f7bf128b02
	LiquidateSpot                         Discriminator = 0x6b00802923e5fb12
	LiquidateBorrowForPerpPnl             Discriminator = 0xa911205acf94d11b
	LiquidatePerpPnlForDeposit            Discriminator = 0xed4bc6ebe9ba4b23
	ResolvePerpPnlDeficit                 Discriminator = 0xa8cc44969f7e5f94
	ResolvePerpBankruptcy                 Discriminator = 0xe010b0d6a2d5b7de
	ResolveSpotBankruptcy                 Discriminator = 0x7cc2f0fec6d5347a
	SettleRevenueToInsuranceFund          Discriminator = 0xc8785d884526c79f
	UpdateFundingRate                     Discriminator = 0xc9b274d4a69048ee
	UpdatePrelaunchOracle                 Discriminator = 0xdc841b1be9dc3ddb
	UpdatePerpBidAskTwap                  Discriminator = 0xf717ff41d45addc2
	UpdateSpotMarketCumulativeInterest    Discriminator = 0x27a68bf39ea59be1
	UpdateAmms                            Discriminator = 0xc96ad9fd04afe461
	UpdateUserQuoteAssetInsuranceStake    Discriminator = 0xfb659c07023f1e17
	InitializeInsuranceFundStake          Discriminator = 0xbbb3f346f85a5c93
	AddInsuranceFundStake                 Discriminator = 0xfb90730bde2f3eec
	RequestRemoveInsuranceFundStake       Discriminator = 0x8e46cc5c496ab434
	CancelRequestRemoveInsuranceFundStake Discriminator = 0x61eb4e3ed42af17f
	RemoveInsuranceFundStake              Discriminator = 0x80a68e09febb8fae
	DepositIntoSpotMarketRevenuePool      Discriminator = 0x5c28972a7afe8bf6
)
