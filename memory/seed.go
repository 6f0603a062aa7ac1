package memory

import "github.com/dcsstech/kbportal"

// SeedAccounts returns the fixed account set loaded at process start.
// Exactly one ADMIN account exists.
func SeedAccounts() []*kbportal.Account {
	return []*kbportal.Account{
		{
			ID:       "admin-feng-dou",
			Name:     "Feng Dou",
			Email:    "feng.dou@dcsstech.com",
			Password: "Doufeng1983",
			Role:     kbportal.RoleAdmin,
		},
	}
}

// SeedDocuments returns the fixed document catalog loaded at process
// start. In a later phase this will come from a config file mapping Box
// folder IDs.
func SeedDocuments() []*kbportal.Document {
	return []*kbportal.Document{
		// Servers (HPE, Dell, Fujitsu, Lenovo, Oracle, Nutanix)
		{
			ID:           "hpe-dl380-g10-hdd",
			Title:        "HPE ProLiant DL380 Gen10 - HDD交換手順書",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "HPE",
			ModelSeries:  "ProLiant DL Gen10",
			LastUpdated:  "2024-03-10",
			BoxLink:      "#box-dl380-hdd",
			IsFavorite:   true,
			Tags:         []string{"HDD", "Maintenance", "Replacement"},
			Description:  "ホットスワップ対応HDDの物理交換およびSmart Storage Administratorでの確認手順。",
		},
		{
			ID:           "hpe-dl360-g10-fan",
			Title:        "HPE ProLiant DL360 Gen10 - ファンモジュール交換",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "HPE",
			ModelSeries:  "ProLiant DL Gen10",
			LastUpdated:  "2023-11-05",
			BoxLink:      "#box-dl360-fan",
			Tags:         []string{"Fan", "Cooling", "Replacement"},
		},
		{
			ID:           "hpe-ilo5-fw-update",
			Title:        "HPE iLO 5 - ファームウェアアップデート手順",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "HPE",
			ModelSeries:  "ProLiant Gen10/Gen10+",
			LastUpdated:  "2024-05-12",
			BoxLink:      "#box-ilo5-fw",
			IsFavorite:   true,
			Tags:         []string{"Firmware", "iLO", "Upgrade"},
			Description:  "Web管理画面経由およびSUMを使用したファームウェア更新のステップバイステップガイド。",
		},
		{
			ID:           "dell-r640-dimm",
			Title:        "Dell EMC PowerEdge R640 - メモリ(DIMM)増設・交換手順",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "Dell",
			ModelSeries:  "PowerEdge 14G",
			LastUpdated:  "2024-01-20",
			BoxLink:      "#box-r640-dimm",
			Tags:         []string{"Memory", "Upgrade", "Replacement"},
		},
		{
			ID:           "dell-idrac-logs",
			Title:        "Dell iDRAC9 - TSRログ取得手順",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "Dell",
			ModelSeries:  "General",
			LastUpdated:  "2024-04-01",
			BoxLink:      "#box-idrac-tsr",
			IsFavorite:   true,
			Tags:         []string{"Logs", "Troubleshooting", "iDRAC"},
		},
		{
			ID:           "fujitsu-rx2540-m5-sysboard",
			Title:        "Fujitsu PRIMERGY RX2540 M5 - システムボード交換手順",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "Fujitsu",
			ModelSeries:  "PRIMERGY RX M5",
			LastUpdated:  "2023-08-15",
			BoxLink:      "#box-rx2540-sysboard",
			Tags:         []string{"Motherboard", "Replacement", "Heavy Maintenance"},
			Description:  "システムボード交換後のシャーシID設定およびBIOSリカバリ手順を含む詳細マニュアル。",
		},
		{
			ID:           "lenovo-sr650-raid",
			Title:        "Lenovo ThinkSystem SR650 - RAID構成ガイド (XClarity)",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "Lenovo",
			ModelSeries:  "ThinkSystem SR",
			LastUpdated:  "2023-12-01",
			BoxLink:      "#box-sr650-raid",
			Tags:         []string{"RAID", "Config", "XClarity"},
		},
		{
			ID:           "oracle-t8-dimm",
			Title:        "Oracle SPARC T8-1 - DIMM交換手順",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "Oracle",
			ModelSeries:  "SPARC T8",
			LastUpdated:  "2023-05-10",
			BoxLink:      "#box-oracle-dimm",
			Tags:         []string{"Solaris", "Hardware", "Memory"},
		},
		{
			ID:           "nutanix-nx-node",
			Title:        "Nutanix NX-3060-G7 - ノード交換手順",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "Nutanix",
			ModelSeries:  "NX G7",
			LastUpdated:  "2024-03-01",
			BoxLink:      "#box-nutanix-node",
			Tags:         []string{"HCI", "Maintenance", "CVM", "Replacement"},
			Description:  "CVMの停止手順から物理交換、クラスターへの再参加・修復手順まで。",
		},

		// Storage (NetApp, Dell EMC, Pure, HPE)
		{
			ID:           "netapp-aff-controller",
			Title:        "NetApp AFF A220 - コントローラーフェイルオーバー手順",
			Type:         kbportal.EquipmentStorage,
			Manufacturer: "NetApp",
			ModelSeries:  "AFF Series",
			LastUpdated:  "2023-12-15",
			BoxLink:      "#box-netapp-fo",
			IsFavorite:   true,
			Tags:         []string{"Controller", "HA", "Ontap"},
			Description:  "メンテナンス時のテイクオーバーおよびギブバック操作コマンド詳細。",
		},
		{
			ID:           "netapp-disk-assign",
			Title:        "NetApp ONTAP - ディスクオーナーシップ変更手順",
			Type:         kbportal.EquipmentStorage,
			Manufacturer: "NetApp",
			ModelSeries:  "General",
			LastUpdated:  "2023-09-20",
			BoxLink:      "#box-netapp-disk",
			Tags:         []string{"Disk", "Ontap", "Configuration"},
		},
		{
			ID:           "emc-unity-sp-reboot",
			Title:        "Dell EMC Unity - SP再起動手順 (Service Mode)",
			Type:         kbportal.EquipmentStorage,
			Manufacturer: "Dell EMC",
			ModelSeries:  "Unity",
			LastUpdated:  "2024-01-15",
			BoxLink:      "#box-unity-sp",
			Tags:         []string{"SP", "Reboot", "Maintenance"},
		},
		{
			ID:           "emc-isilon-node-replace",
			Title:        "Dell EMC Isilon Gen6 - ノード交換手順",
			Type:         kbportal.EquipmentStorage,
			Manufacturer: "Dell EMC",
			ModelSeries:  "Isilon / PowerScale",
			LastUpdated:  "2024-02-10",
			BoxLink:      "#box-isilon-node",
			Tags:         []string{"Node", "Replacement", "Smartfail"},
			Description:  "Smartfailプロセスおよび物理交換、新規ノードのクラスタ参加手順。",
		},
		{
			ID:           "pure-flasharray-module",
			Title:        "Pure Storage FlashArray //X - Flashモジュール交換",
			Type:         kbportal.EquipmentStorage,
			Manufacturer: "Pure Storage",
			ModelSeries:  "FlashArray //X",
			LastUpdated:  "2024-04-20",
			BoxLink:      "#box-pure-flash",
			IsFavorite:   true,
			Tags:         []string{"Flash", "Replacement", "Purity"},
			Description:  "Purity GUIを使用した確認と物理交換作業のフロー。",
		},
		{
			ID:           "hpe-nimble-controller",
			Title:        "HPE Nimble Storage - コントローラー交換手順",
			Type:         kbportal.EquipmentStorage,
			Manufacturer: "HPE",
			ModelSeries:  "Nimble AF/HF",
			LastUpdated:  "2023-10-05",
			BoxLink:      "#box-nimble-ctrl",
			Tags:         []string{"Controller", "Replacement", "HA"},
		},

		// Network (Cisco, Juniper, Fortinet, Palo Alto)
		{
			ID:           "cisco-cat-ios-upgrade",
			Title:        "Cisco Catalyst 2960X/9200 - IOSバージョンアップ手順",
			Type:         kbportal.EquipmentNetwork,
			Manufacturer: "Cisco",
			ModelSeries:  "Catalyst",
			LastUpdated:  "2024-02-28",
			BoxLink:      "#box-cisco-ios",
			Tags:         []string{"Firmware", "Upgrade", "IOS"},
			Description:  "TFTPサーバーを使用したIOSイメージの転送とBoot変数の書き換え。",
		},
		{
			ID:           "cisco-nexus-vpc",
			Title:        "Cisco Nexus 9000 - vPC設定ガイド",
			Type:         kbportal.EquipmentNetwork,
			Manufacturer: "Cisco",
			ModelSeries:  "Nexus 9000",
			LastUpdated:  "2023-10-10",
			BoxLink:      "#box-nexus-vpc",
			Tags:         []string{"Config", "vPC", "Switching"},
		},
		{
			ID:           "juniper-ex-vlan",
			Title:        "Juniper EXシリーズ - VLAN設定およびTrunk設定",
			Type:         kbportal.EquipmentNetwork,
			Manufacturer: "Juniper",
			ModelSeries:  "EX Series",
			LastUpdated:  "2023-07-22",
			BoxLink:      "#box-juniper-vlan",
			Tags:         []string{"VLAN", "Config", "Junos"},
		},
		{
			ID:           "fortigate-firmware",
			Title:        "Fortinet FortiGate - ファームウェアアップグレードパス確認と実行",
			Type:         kbportal.EquipmentNetwork,
			Manufacturer: "Fortinet",
			ModelSeries:  "FortiGate",
			LastUpdated:  "2024-03-15",
			BoxLink:      "#box-forti-fw",
			IsFavorite:   true,
			Tags:         []string{"Firmware", "Security", "Upgrade"},
			Description:  "Upgrade Path Toolを使用した適切なバージョンの選定と適用手順。",
		},
		{
			ID:           "paloalto-pa3220-rma",
			Title:        "Palo Alto PA-3220 - 筐体交換(RMA)手順",
			Type:         kbportal.EquipmentNetwork,
			Manufacturer: "Palo Alto",
			ModelSeries:  "PA-3000 Series",
			LastUpdated:  "2024-01-15",
			BoxLink:      "#box-pa3220-rma",
			IsFavorite:   true,
			Tags:         []string{"Security", "RMA", "Restore"},
			Description:  "ライセンスのデアクティベーションとコンフィグのリストア手順。",
		},

		// Tape libraries (IBM, HPE)
		{
			ID:           "ibm-ts4300-drive",
			Title:        "IBM TS4300 - テープドライブ交換手順",
			Type:         kbportal.EquipmentLibrary,
			Manufacturer: "IBM",
			ModelSeries:  "TS4300",
			LastUpdated:  "2023-05-30",
			BoxLink:      "#box-ts4300-drive",
			Tags:         []string{"Tape", "Drive", "Replacement"},
			Description:  "WebGUIからのドライブオフライン化および物理交換手順。",
		},
		{
			ID:           "hpe-msl-robot",
			Title:        "HPE MSL3040 - ロボットアセンブリ交換",
			Type:         kbportal.EquipmentLibrary,
			Manufacturer: "HPE",
			ModelSeries:  "MSL3040",
			LastUpdated:  "2022-11-12",
			BoxLink:      "#box-msl-robot",
			Tags:         []string{"Robotics", "Maintenance", "Replacement"},
		},

		// General / OS (VMware, Linux, UPS, DCSS standards)
		{
			ID:           "vmware-esxi-logs",
			Title:        "VMware ESXi - vm-supportログ取得手順",
			Type:         kbportal.EquipmentGeneral,
			Manufacturer: "VMware",
			ModelSeries:  "vSphere 7/8",
			LastUpdated:  "2024-01-05",
			BoxLink:      "#box-esxi-logs",
			IsFavorite:   true,
			Tags:         []string{"Logs", "Virtualization", "Troubleshooting"},
		},
		{
			ID:           "redhat-sosreport",
			Title:        "RHEL/CentOS - sosreport取得手順",
			Type:         kbportal.EquipmentGeneral,
			Manufacturer: "Red Hat",
			ModelSeries:  "RHEL 7/8/9",
			LastUpdated:  "2023-08-08",
			BoxLink:      "#box-sosreport",
			Tags:         []string{"Logs", "Linux", "Troubleshooting"},
		},
		{
			ID:           "apc-smt1500-battery",
			Title:        "APC Smart-UPS 1500 - バッテリーモジュール交換",
			Type:         kbportal.EquipmentGeneral,
			Manufacturer: "APC (Schneider)",
			ModelSeries:  "Smart-UPS",
			LastUpdated:  "2022-09-01",
			BoxLink:      "#box-apc-batt",
			Tags:         []string{"UPS", "Battery", "Maintenance"},
		},
		{
			ID:           "dcss-cabling-standard",
			Title:        "DCSS標準 - サーバーラック配線・整線ガイドライン",
			Type:         kbportal.EquipmentGeneral,
			Manufacturer: "DCSS",
			ModelSeries:  "Standard",
			LastUpdated:  "2023-04-01",
			BoxLink:      "#box-dcss-cabling",
			IsFavorite:   true,
			Tags:         []string{"Cabling", "Best Practice", "Training"},
			Description:  "電源ケーブルおよびLAN/FCケーブルの敷設ルールとベルクロ固定要領。",
		},
		{
			ID:           "dcss-esd-safety",
			Title:        "静電気放電(ESD)対策および作業安全基準",
			Type:         kbportal.EquipmentGeneral,
			Manufacturer: "DCSS",
			ModelSeries:  "Safety",
			LastUpdated:  "2023-01-01",
			BoxLink:      "#box-dcss-esd",
			Tags:         []string{"Safety", "ESD", "Compliance"},
		},
	}
}
